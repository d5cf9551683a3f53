package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo registra eventos de auditoria em audit_logs. É chamado best-effort
// pelos casos de uso; quem chama decide se a falha aborta ou não.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Record grava um evento com detalhes livres em jsonb.
func (r *AuditRepo) Record(userID, event string, details map[string]any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	query := `
		INSERT INTO audit_logs (id, user_id, event, details, created_at)
		VALUES ($1, $2, $3, $4, now())`
	if _, err := r.q.Exec(context.Background(), query, uuid.New().String(), userID, event, payload); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
