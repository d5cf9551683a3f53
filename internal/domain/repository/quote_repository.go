package repository

import (
	"time"

	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
)

// QuoteRepository define o porto de persistência de orçamentos.
// O texto do contrato mora em tabela própria (contracts), um registro por
// orçamento, upsert por quote_id — daí os métodos SaveContract/GetContract.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id, userID string) (*entity.Quote, error)
	ListByUser(userID string) ([]*entity.Quote, error)
	Update(quote *entity.Quote) error
	Delete(id, userID string) error

	// Acesso público por token de compartilhamento (sem escopo de usuário).
	GetByPublicToken(token string) (*entity.Quote, error)
	// SetViewedAt estampa/atualiza a visualização pública.
	SetViewedAt(id string, viewedAt time.Time) error

	SaveContract(quoteID, content string) error
	GetContract(quoteID string) (string, error)
}
