package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
)

// AIHandler trata as requisições HTTP de geração assistida (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler constrói o handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateClauses POST /api/ai/clauses
func (h *AIHandler) GenerateClauses(c *fiber.Ctx) error {
	var in dto.GenerateClausesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	text, err := h.uc.GenerateClauses(c.UserContext(), GetUserID(c), in.QuoteID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.AITextResponse{Text: text})
}

// GenerateTemplate POST /api/ai/templates
func (h *AIHandler) GenerateTemplate(c *fiber.Ctx) error {
	var in dto.GenerateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	text, err := h.uc.GenerateTemplate(c.UserContext(), GetUserID(c), in.TemplateName)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.AITextResponse{Text: text})
}

// SaveAPIKey PUT /api/ai/key
func (h *AIHandler) SaveAPIKey(c *fiber.Ctx) error {
	var in dto.SaveAPIKeyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.SaveAPIKey(GetUserID(c), in.APIKey); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
