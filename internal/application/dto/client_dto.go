package dto

import "time"

// CreateClientRequest entrada para cadastrar um cliente.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// UpdateClientRequest entrada para atualizar um cliente (campos opcionais).
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	Email     string    `json:"email,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
