package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do ciclo de vida de um orçamento.
// DRAFT é um estado legal mas nunca produzido pelos fluxos atuais: o app sempre
// cria direto em SENT. Mantido para compatibilidade futura, sem novas transições.
const (
	StatusDraft     = "DRAFT"     // Rascunho
	StatusSent      = "SENT"      // Enviado / Pendente
	StatusApproved  = "APPROVED"  // Aprovado (recebe número de contrato)
	StatusRejected  = "REJECTED"  // Rejeitado / Cancelado (terminal)
	StatusCompleted = "COMPLETED" // Concluído (terminal, inicia a garantia)
)

// ServiceItem é um item de serviço dentro de um orçamento (objeto de valor).
type ServiceItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
}

// MaterialItem é um item de material dentro de um orçamento.
// Invariante: TotalPrice == Quantity * UnitPrice, recalculado a cada edição.
type MaterialItem struct {
	ID         string
	Name       string
	Brand      string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Recalculate restabelece o invariante TotalPrice = Quantity * UnitPrice.
// Deve ser chamado em todo caminho de edição de Quantity ou UnitPrice.
func (m *MaterialItem) Recalculate() {
	m.TotalPrice = m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// Quote é o agregado central: proposta de serviços/materiais enviada a um cliente.
type Quote struct {
	ID             string
	UserID         string
	Number         string // código de exibição, ex.: "#0042"
	ContractNumber string // atribuído apenas na aprovação ("CTR-0042")

	Client    Client
	Services  []ServiceItem
	Materials []MaterialItem

	// Snapshot dos dados do emissor capturado na criação (cópia, não referência viva).
	CompanyInfo *CompanyInfo

	WarrantyDuration int    // meses, >= 0
	PaymentTerms     string // texto livre; pode citar pix/transferência/depósito
	ValidUntil       *time.Time

	// Seleção de modelo vigente: toda edição regenera ContractTerms contra ela.
	TemplateID string

	Status         string
	Date           time.Time // data de emissão
	ContractTerms  string    // texto do contrato gerado; regenerado a cada edição
	CompletionDate *time.Time
	WarrantyUntil  *time.Time // = CompletionDate + WarrantyDuration meses
	SignatureData  string     // assinatura do cliente (blob opaco)
	ViewedAt       *time.Time // primeira/última visualização pública
	PublicToken    string     // identificador opaco de compartilhamento
	AccessPassword string     // senha curta opcional do link público
	TotalValue     decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal indica se o status não admite mais transições.
func IsTerminal(status string) bool {
	return status == StatusRejected || status == StatusCompleted
}

// HasAccessPassword indica se o link público exige senha.
func (q *Quote) HasAccessPassword() bool {
	return q.AccessPassword != ""
}
