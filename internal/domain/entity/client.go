package entity

import "time"

// Client representa um cliente final do prestador (dono da conta).
// O Quote guarda apenas a referência; o Client é a fonte de verdade dos dados cadastrais.
type Client struct {
	ID        string
	UserID    string
	Name      string
	Address   string
	Phone     string
	Document  string // CPF ou CNPJ
	Email     string
	Avatar    string // URL da imagem (upload tratado fora deste serviço)
	CreatedAt time.Time
	UpdatedAt time.Time
}
