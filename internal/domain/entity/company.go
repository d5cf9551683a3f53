package entity

import "time"

// Status de assinatura da conta.
const (
	SubscriptionTrial   = "trial"
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"
)

// Planos de assinatura disponíveis.
const (
	PlanMensal    = "mensal"
	PlanSemestral = "semestral"
	PlanAnual     = "anual"
)

// CompanyInfo são os dados do prestador/empresa emissora do contrato.
// Cada Quote captura uma cópia imutável destes dados no momento da criação,
// para que o contrato reflita o emissor daquele momento mesmo que o perfil mude depois.
type CompanyInfo struct {
	Name          string
	CompanyName   string // razão social; vazio = usa Name
	Document      string // CPF ou CNPJ
	Email         string
	Phone         string
	Address       string
	Logo          string
	TechSignature string // assinatura do técnico (imagem ou vetor, blob opaco)
	PixKey        string
	BankInfo      string
}

// Subscription estado de assinatura do dono da conta.
type Subscription struct {
	Status      string // ver constantes Subscription*
	Plan        string // ver constantes Plan*
	TrialEndsAt *time.Time
	EndsAt      *time.Time // subscription_ends_at
	ActivatedAt *time.Time
}
