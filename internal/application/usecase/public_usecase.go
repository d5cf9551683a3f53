package usecase

import (
	"time"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/orcamento"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
	"github.com/gestorpro/orcamentos-api/pkg/logger"
)

// PublicUseCase resolve o acesso não autenticado a orçamentos compartilhados:
// token existe? exige senha? e, autorizado, entrega o orçamento e estampa a
// visualização. Expõe uma única transição pública: aprovar um orçamento SENT.
type PublicUseCase struct {
	quotes repository.QuoteRepository
	log    *logger.Logger
	now    func() time.Time
}

// NewPublicUseCase constrói o resolvedor. now permite fixar o relógio nos testes.
func NewPublicUseCase(quotes repository.QuoteRepository, log *logger.Logger, now func() time.Time) *PublicUseCase {
	if now == nil {
		now = time.Now
	}
	return &PublicUseCase{quotes: quotes, log: log, now: now}
}

// CheckAccess informa se o token aponta para um orçamento e se há senha.
// Token desconhecido ou malformado devolve exists=false, nunca erro.
func (uc *PublicUseCase) CheckAccess(token string) (*dto.PublicAccessResponse, error) {
	if token == "" {
		return &dto.PublicAccessResponse{Exists: false}, nil
	}
	q, err := uc.quotes.GetByPublicToken(token)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return &dto.PublicAccessResponse{Exists: false}, nil
	}
	return &dto.PublicAccessResponse{Exists: true, RequiresPassword: q.HasAccessPassword()}, nil
}

// Resolve entrega o orçamento do token, validando a senha quando exigida
// (comparação exata de string). Sucesso estampa/atualiza viewedAt —
// best-effort: falha na estampa não impede a visualização.
func (uc *PublicUseCase) Resolve(token, password string) (*dto.QuoteResponse, error) {
	q, err := uc.authorize(token, password)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := uc.quotes.SetViewedAt(q.ID, now); err != nil {
		if uc.log != nil {
			uc.log.Warn().Err(err).Str("quote_id", q.ID).Msg("falha ao estampar visualização")
		}
	} else {
		q.ViewedAt = &now
	}

	return toPublicQuoteResponse(q), nil
}

// Approve é a única mudança de status exposta publicamente: SENT -> APPROVED,
// pelo mesmo caminho de autorização do Resolve.
func (uc *PublicUseCase) Approve(token, password string) (*dto.QuoteResponse, error) {
	q, err := uc.authorize(token, password)
	if err != nil {
		return nil, err
	}
	if err := orcamento.Approve(q); err != nil {
		return nil, err
	}
	q.UpdatedAt = uc.now()
	if err := uc.quotes.Update(q); err != nil {
		return nil, err
	}
	return toPublicQuoteResponse(q), nil
}

func (uc *PublicUseCase) authorize(token, password string) (*entity.Quote, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	q, err := uc.quotes.GetByPublicToken(token)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.HasAccessPassword() && password != q.AccessPassword {
		return nil, domain.ErrBadPassword
	}
	return q, nil
}

// toPublicQuoteResponse omite o que o visitante não deve ver (senha nunca sai;
// o token ele já tem).
func toPublicQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	resp := toQuoteResponse(q)
	resp.PublicToken = ""
	return resp
}
