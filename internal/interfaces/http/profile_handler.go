package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
)

// ProfileHandler trata as requisições HTTP do perfil do usuário (protegido).
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler constrói o handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(profile)
}

// Update PUT /api/profile
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	profile, err := h.uc.Update(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(profile)
}

// CreateTemplate POST /api/profile/templates
func (h *ProfileHandler) CreateTemplate(c *fiber.Ctx) error {
	var in dto.ContractTemplateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	profile, err := h.uc.SaveTemplate(GetUserID(c), "", in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateTemplate PUT /api/profile/templates/:id
func (h *ProfileHandler) UpdateTemplate(c *fiber.Ctx) error {
	var in dto.ContractTemplateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	profile, err := h.uc.SaveTemplate(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(profile)
}

// DeleteTemplate DELETE /api/profile/templates/:id
func (h *ProfileHandler) DeleteTemplate(c *fiber.Ctx) error {
	profile, err := h.uc.DeleteTemplate(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(profile)
}
