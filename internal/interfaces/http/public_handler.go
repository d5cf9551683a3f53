package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
)

// PublicHandler trata o acesso não autenticado a orçamentos compartilhados.
type PublicHandler struct {
	uc *usecase.PublicUseCase
}

// NewPublicHandler constrói o handler.
func NewPublicHandler(uc *usecase.PublicUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// Check GET /api/public/quotes/:token
// Diz apenas se o token existe e se exige senha; nunca vaza o conteúdo.
func (h *PublicHandler) Check(c *fiber.Ctx) error {
	resp, err := h.uc.CheckAccess(c.Params("token"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// Resolve POST /api/public/quotes/:token/resolve
// Entrega o orçamento, validando a senha quando exigida.
func (h *PublicHandler) Resolve(c *fiber.Ctx) error {
	var in dto.PublicResolveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.Resolve(c.Params("token"), in.Password)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(quote)
}

// Approve POST /api/public/quotes/:token/approve
// Única transição exposta publicamente: SENT -> APPROVED.
func (h *PublicHandler) Approve(c *fiber.Ctx) error {
	var in dto.PublicResolveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.Approve(c.Params("token"), in.Password)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(quote)
}
