package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/orcamentos-api/internal/application/auth"
	"github.com/gestorpro/orcamentos-api/internal/application/dto"
)

// AuthHandler trata as requisições HTTP de autenticação (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Register(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		// Credencial errada e conta inexistente respondem igual.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email ou senha incorretos"})
	}
	return c.JSON(resp)
}
