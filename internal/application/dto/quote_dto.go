package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItemInput item de serviço dentro de um orçamento.
type ServiceItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// MaterialItemInput item de material. TotalPrice é sempre recalculado no
// servidor (quantity * unit_price); o valor enviado pelo cliente é ignorado.
type MaterialItemInput struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateQuoteRequest entrada para criar um orçamento.
type CreateQuoteRequest struct {
	ClientID         string              `json:"client_id"`
	Number           string              `json:"number"`
	Services         []ServiceItemInput  `json:"services"`
	Materials        []MaterialItemInput `json:"materials"`
	WarrantyDuration int                 `json:"warranty_duration"`
	PaymentTerms     string              `json:"payment_terms"`
	ValidUntil       *time.Time          `json:"valid_until"`
	TemplateID       string              `json:"template_id"`
	ContractTerms    string              `json:"contract_terms"` // opcional; vazio = gerado do modelo
	AccessPassword   string              `json:"access_password"`
}

// UpdateQuoteRequest entrada para editar o conteúdo comercial de um orçamento
// não terminal. A edição regenera o texto do contrato e recalcula o total.
type UpdateQuoteRequest struct {
	ClientID         *string             `json:"client_id"`
	Services         []ServiceItemInput  `json:"services"`
	Materials        []MaterialItemInput `json:"materials"`
	WarrantyDuration *int                `json:"warranty_duration"`
	PaymentTerms     *string             `json:"payment_terms"`
	ValidUntil       *time.Time          `json:"valid_until"`
	TemplateID       *string             `json:"template_id"`
	ContractTerms    *string             `json:"contract_terms"`
	AccessPassword   *string             `json:"access_password"`
	SignatureData    *string             `json:"signature_data"`
}

// ServiceItemResponse item de serviço na resposta.
type ServiceItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// MaterialItemResponse item de material na resposta.
type MaterialItemResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// QuoteResponse saída de um orçamento.
type QuoteResponse struct {
	ID               string                 `json:"id"`
	Number           string                 `json:"number"`
	ContractNumber   string                 `json:"contract_number,omitempty"`
	Status           string                 `json:"status"`
	Client           ClientResponse         `json:"client"`
	Services         []ServiceItemResponse  `json:"services"`
	Materials        []MaterialItemResponse `json:"materials"`
	WarrantyDuration int                    `json:"warranty_duration"`
	PaymentTerms     string                 `json:"payment_terms"`
	Date             time.Time              `json:"date"`
	ValidUntil       *time.Time             `json:"valid_until,omitempty"`
	ContractTerms    string                 `json:"contract_terms,omitempty"`
	CompletionDate   *time.Time             `json:"completion_date,omitempty"`
	WarrantyUntil    *time.Time             `json:"warranty_until,omitempty"`
	SignatureData    string                 `json:"signature_data,omitempty"`
	ViewedAt         *time.Time             `json:"viewed_at,omitempty"`
	PublicToken      string                 `json:"public_token,omitempty"`
	TotalValue       decimal.Decimal        `json:"total_value"`
	ServicesTotal    decimal.Decimal        `json:"services_total"`
	MaterialsTotal   decimal.Decimal        `json:"materials_total"`
}

// CompleteQuoteRequest entrada para concluir um serviço (assinatura do cliente
// coletada na hora, se ainda não estiver no orçamento).
type CompleteQuoteRequest struct {
	SignatureData string `json:"signature_data"`
}
