package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestorpro/orcamentos-api/internal/application/auth"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

var _ usecase.QuoteTxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuotes inicia uma transação, executa fn com o repositório de orçamentos
// atado à tx e faz Commit ou Rollback (escritas orçamento + contrato).
func (r *TxRunner) RunQuotes(fn func(quotes repository.QuoteRepository) error) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuoteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSignup inicia uma transação com os repositórios de conta e perfil
// (para o Register criar os dois atomicamente).
func (r *TxRunner) RunSignup(fn func(users repository.UserRepository, profiles repository.ProfileRepository) error) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewProfileRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
