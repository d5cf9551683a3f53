package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes do prestador.
type ClientUseCase struct {
	clients repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

// Create cadastra um cliente.
func (uc *ClientUseCase) Create(userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Document:  in.Document,
		Email:     in.Email,
		Avatar:    in.Avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// Get devolve um cliente do usuário.
func (uc *ClientUseCase) Get(userID, id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// List devolve os clientes do usuário ordenados por nome.
func (uc *ClientUseCase) List(userID string) ([]dto.ClientResponse, error) {
	list, err := uc.clients.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update atualiza campos do cliente.
func (uc *ClientUseCase) Update(userID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Document != nil {
		client.Document = *in.Document
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Avatar != nil {
		client.Avatar = *in.Avatar
	}
	client.UpdatedAt = time.Now()
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// Delete remove um cliente do usuário.
func (uc *ClientUseCase) Delete(userID, id string) error {
	client, err := uc.clients.GetByID(id, userID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clients.Delete(id, userID)
}
