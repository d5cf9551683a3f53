package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateProfileRequest entrada para atualizar o perfil (campos opcionais).
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	CompanyName   *string `json:"company_name"`
	Document      *string `json:"document"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Logo          *string `json:"logo"`
	TechSignature *string `json:"tech_signature"`
	PixKey        *string `json:"pix_key"`
	BankInfo      *string `json:"bank_info"`
}

// ContractTemplateInput modelo de contrato nomeado.
type ContractTemplateInput struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Content string `json:"content"`
}

// ContractTemplateResponse modelo de contrato na resposta.
type ContractTemplateResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Content string `json:"content"`
}

// CatalogMaterialResponse entrada do catálogo de materiais.
type CatalogMaterialResponse struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ProfileResponse saída do perfil do usuário.
type ProfileResponse struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	CompanyName        string                     `json:"company_name,omitempty"`
	Document           string                     `json:"document,omitempty"`
	Email              string                     `json:"email,omitempty"`
	Phone              string                     `json:"phone,omitempty"`
	Address            string                     `json:"address,omitempty"`
	Logo               string                     `json:"logo,omitempty"`
	TechSignature      string                     `json:"tech_signature,omitempty"`
	PixKey             string                     `json:"pix_key,omitempty"`
	BankInfo           string                     `json:"bank_info,omitempty"`
	SubscriptionStatus string                     `json:"subscription_status"`
	SubscriptionPlan   string                     `json:"subscription_plan,omitempty"`
	TrialEndsAt        *time.Time                 `json:"trial_ends_at,omitempty"`
	SubscriptionEndsAt *time.Time                 `json:"subscription_ends_at,omitempty"`
	MaterialCatalog    []CatalogMaterialResponse  `json:"material_catalog"`
	ContractTemplates  []ContractTemplateResponse `json:"contract_templates"`
}
