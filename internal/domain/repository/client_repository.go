package repository

import "github.com/gestorpro/orcamentos-api/internal/domain/entity"

// ClientRepository define o porto de persistência de clientes (escopo por usuário).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id, userID string) (*entity.Client, error)
	ListByUser(userID string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id, userID string) error
}
