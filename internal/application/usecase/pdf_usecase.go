package usecase

import (
	"context"
	"fmt"

	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

// Documentos imprimíveis de um orçamento.
const (
	DocumentQuote    = "quote"    // proposta comercial
	DocumentContract = "contract" // contrato gerado
	DocumentWarranty = "warranty" // certificado de garantia (somente COMPLETED)
)

// QuotePDFGenerator porto do gerador da representação gráfica dos documentos.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q *entity.Quote, company *entity.CompanyInfo) ([]byte, error)
	GenerateContractPDF(ctx context.Context, q *entity.Quote, company *entity.CompanyInfo) ([]byte, error)
	GenerateWarrantyPDF(ctx context.Context, q *entity.Quote, company *entity.CompanyInfo) ([]byte, error)
}

// PDFUseCase entrega os documentos de um orçamento em PDF.
type PDFUseCase struct {
	quotes    repository.QuoteRepository
	profiles  repository.ProfileRepository
	generator QuotePDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(quotes repository.QuoteRepository, profiles repository.ProfileRepository, generator QuotePDFGenerator) *PDFUseCase {
	return &PDFUseCase{quotes: quotes, profiles: profiles, generator: generator}
}

// Generate produz o PDF do documento pedido. O emissor vem do snapshot do
// orçamento; perfil atual só como fallback de orçamentos antigos sem snapshot.
func (uc *PDFUseCase) Generate(ctx context.Context, userID, quoteID, document string) ([]byte, error) {
	q, err := uc.quotes.GetByID(quoteID, userID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}

	company := q.CompanyInfo
	if company == nil {
		profile, err := uc.profiles.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			company = &profile.CompanyInfo
		} else {
			company = &entity.CompanyInfo{}
		}
	}

	switch document {
	case DocumentQuote:
		return uc.generator.GenerateQuotePDF(ctx, q, company)
	case DocumentContract:
		return uc.generator.GenerateContractPDF(ctx, q, company)
	case DocumentWarranty:
		if q.Status != entity.StatusCompleted {
			return nil, fmt.Errorf("%w: garantia só existe após a conclusão", domain.ErrInvalidInput)
		}
		return uc.generator.GenerateWarrantyPDF(ctx, q, company)
	default:
		return nil, fmt.Errorf("%w: documento desconhecido %q", domain.ErrInvalidInput, document)
	}
}
