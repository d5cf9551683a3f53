package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo guarda a chave de API de IA registrada por usuário
// (upsert por user_id).
type CredentialRepo struct {
	q Querier
}

// NewCredentialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCredentialRepository(q Querier) *CredentialRepo {
	return &CredentialRepo{q: q}
}

// GetAPIKey devolve a chave do usuário ("" se não registrada).
func (r *CredentialRepo) GetAPIKey(userID string) (string, error) {
	var key string
	err := r.q.QueryRow(context.Background(),
		`SELECT gemini_api_key FROM ai_credentials WHERE user_id = $1`, userID).Scan(&key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get api key: %w", err)
	}
	return key, nil
}

// SaveAPIKey grava ou substitui a chave do usuário.
func (r *CredentialRepo) SaveAPIKey(userID, key string) error {
	query := `
		INSERT INTO ai_credentials (user_id, gemini_api_key, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET gemini_api_key = EXCLUDED.gemini_api_key, updated_at = now()`
	if _, err := r.q.Exec(context.Background(), query, userID, key); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}
