package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractTemplate é um modelo de contrato reutilizável com placeholders {{TOKEN}}.
type ContractTemplate struct {
	ID      string
	Name    string
	Icon    string
	Content string
}

// CatalogMaterial é uma entrada do catálogo de materiais do usuário:
// cache append-only de nome/marca/preço já usados, para autocompletar novos orçamentos.
type CatalogMaterial struct {
	Name      string
	Brand     string
	UnitPrice decimal.Decimal
}

// UserProfile estende os dados de empresa com o estado de assinatura e as
// coleções do usuário (catálogo de materiais e modelos de contrato).
type UserProfile struct {
	ID string
	CompanyInfo
	Subscription      Subscription
	MaterialCatalog   []CatalogMaterial
	ContractTemplates []ContractTemplate
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
