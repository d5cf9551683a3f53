package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
)

// ClientHandler trata as requisições HTTP de clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	client, err := h.uc.Create(userID, in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	client, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
