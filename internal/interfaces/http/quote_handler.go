package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
)

// QuoteHandler trata as requisições HTTP de orçamentos (protegido).
type QuoteHandler struct {
	uc  *usecase.QuoteUseCase
	pdf *usecase.PDFUseCase
}

// NewQuoteHandler constrói o handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, pdf *usecase.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdf: pdf}
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// List GET /api/quotes
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(quote)
}

// Update PUT /api/quotes/:id
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(quote)
}

// Delete DELETE /api/quotes/:id
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Approve POST /api/quotes/:id/approve
func (h *QuoteHandler) Approve(c *fiber.Ctx) error {
	quote, err := h.uc.Approve(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(quote)
}

// Reject POST /api/quotes/:id/reject
func (h *QuoteHandler) Reject(c *fiber.Ctx) error {
	quote, err := h.uc.Reject(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(quote)
}

// Complete POST /api/quotes/:id/complete
func (h *QuoteHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.Complete(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(quote)
}

// PDF GET /api/quotes/:id/pdf?document=quote|contract|warranty
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	document := c.Query("document", usecase.DocumentQuote)
	data, err := h.pdf.Generate(c.UserContext(), GetUserID(c), id, document)
	if err != nil {
		return handleDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s-%s.pdf", document, id))
	return c.Send(data)
}
