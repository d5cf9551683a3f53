package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação de ClientRepository (usável com pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, address, phone, document, email, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.UserID, client.Name, client.Address, client.Phone,
		client.Document, client.Email, client.Avatar, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtém um cliente do usuário por ID.
func (r *ClientRepo) GetByID(id, userID string) (*entity.Client, error) {
	query := `
		SELECT id, user_id, name, address, phone, document, email, avatar, created_at, updated_at
		FROM clients WHERE id = $1 AND user_id = $2`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Address, &c.Phone, &c.Document, &c.Email, &c.Avatar,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByUser lista os clientes do usuário em ordem alfabética.
func (r *ClientRepo) ListByUser(userID string) ([]*entity.Client, error) {
	query := `
		SELECT id, user_id, name, address, phone, document, email, avatar, created_at, updated_at
		FROM clients WHERE user_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Address, &c.Phone, &c.Document, &c.Email, &c.Avatar, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $3, address = $4, phone = $5, document = $6, email = $7, avatar = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		client.ID, client.UserID, client.Name, client.Address, client.Phone,
		client.Document, client.Email, client.Avatar, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um cliente do usuário.
func (r *ClientRepo) Delete(id, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
