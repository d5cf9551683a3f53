package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestorpro/orcamentos-api/internal/application/access"
	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/contract"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/orcamento"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
	"github.com/gestorpro/orcamentos-api/pkg/logger"
)

// QuoteTxRunner executa escritas orçamento + contrato dentro de uma transação.
type QuoteTxRunner interface {
	RunQuotes(fn func(quotes repository.QuoteRepository) error) error
}

// QuoteUseCase orquestra o ciclo de vida completo do orçamento: criação com
// snapshot do emissor, edição com regeneração do contrato, transições de
// status e exclusão.
type QuoteUseCase struct {
	quotes   repository.QuoteRepository
	clients  repository.ClientRepository
	profiles repository.ProfileRepository
	tx       QuoteTxRunner
	gate     *access.Gate
	log      *logger.Logger
	now      func() time.Time
}

// NewQuoteUseCase constrói o caso de uso. now permite fixar o relógio nos testes.
func NewQuoteUseCase(
	quotes repository.QuoteRepository,
	clients repository.ClientRepository,
	profiles repository.ProfileRepository,
	tx QuoteTxRunner,
	gate *access.Gate,
	log *logger.Logger,
	now func() time.Time,
) *QuoteUseCase {
	if now == nil {
		now = time.Now
	}
	return &QuoteUseCase{quotes: quotes, clients: clients, profiles: profiles, tx: tx, gate: gate, log: log, now: now}
}

// Create cria um orçamento já em SENT, com snapshot imutável dos dados do
// emissor, token público novo e total estampado pelo calculador.
func (uc *QuoteUseCase) Create(userID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := uc.gate.EnsureAccountNotExpired(userID, "create_quote"); err != nil {
		return nil, err
	}
	if in.ClientID == "" || in.Number == "" {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clients.GetByID(in.ClientID, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	services, err := buildServices(in.Services)
	if err != nil {
		return nil, err
	}
	materials, err := buildMaterials(in.Materials)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	// Cópia por valor: o contrato reflete o emissor deste momento,
	// mesmo que o perfil mude depois.
	snapshot := profile.CompanyInfo

	now := uc.now()
	q := &entity.Quote{
		ID:               uuid.New().String(),
		UserID:           userID,
		Number:           in.Number,
		Client:           *client,
		Services:         services,
		Materials:        materials,
		CompanyInfo:      &snapshot,
		WarrantyDuration: in.WarrantyDuration,
		PaymentTerms:     in.PaymentTerms,
		ValidUntil:       in.ValidUntil,
		TemplateID:       in.TemplateID,
		Status:           entity.StatusSent,
		Date:             now,
		PublicToken:      uuid.NewString(),
		AccessPassword:   in.AccessPassword,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if q.WarrantyDuration < 0 {
		return nil, fmt.Errorf("%w: garantia negativa", domain.ErrInvalidInput)
	}
	q.TotalValue = orcamento.Total(q.Services, q.Materials)

	if in.ContractTerms != "" {
		q.ContractTerms = in.ContractTerms
	} else {
		q.ContractTerms = contract.Render(uc.templateContent(profile, q.TemplateID), q, q.CompanyInfo, now)
	}

	// Orçamento e contrato nascem juntos ou não nascem.
	err = uc.tx.RunQuotes(func(quotes repository.QuoteRepository) error {
		if err := quotes.Create(q); err != nil {
			return err
		}
		return quotes.SaveContract(q.ID, q.ContractTerms)
	})
	if err != nil {
		return nil, err
	}

	// Cache do catálogo de materiais: best-effort, nunca aborta a criação.
	uc.cacheMaterials(userID, materials)

	return toQuoteResponse(q), nil
}

// Get devolve um orçamento do usuário.
func (uc *QuoteUseCase) Get(userID, id string) (*dto.QuoteResponse, error) {
	q, err := uc.fetch(userID, id)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// List devolve os orçamentos do usuário, mais recentes primeiro.
func (uc *QuoteUseCase) List(userID string) ([]dto.QuoteResponse, error) {
	list, err := uc.quotes.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, *toQuoteResponse(q))
	}
	return out, nil
}

// Update edita o conteúdo comercial de um orçamento não terminal, recalcula o
// total e regenera o texto do contrato contra a seleção de modelo vigente.
func (uc *QuoteUseCase) Update(userID, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	q, err := uc.fetch(userID, id)
	if err != nil {
		return nil, err
	}
	if !orcamento.CanEdit(q.Status) {
		return nil, fmt.Errorf("%w: orçamento em estado terminal", domain.ErrInvalidTransition)
	}

	if in.ClientID != nil {
		client, err := uc.clients.GetByID(*in.ClientID, userID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		q.Client = *client
	}
	if in.Services != nil {
		services, err := buildServices(in.Services)
		if err != nil {
			return nil, err
		}
		q.Services = services
	}
	if in.Materials != nil {
		materials, err := buildMaterials(in.Materials)
		if err != nil {
			return nil, err
		}
		q.Materials = materials
	}
	if in.WarrantyDuration != nil {
		if *in.WarrantyDuration < 0 {
			return nil, fmt.Errorf("%w: garantia negativa", domain.ErrInvalidInput)
		}
		q.WarrantyDuration = *in.WarrantyDuration
	}
	if in.PaymentTerms != nil {
		q.PaymentTerms = *in.PaymentTerms
	}
	if in.ValidUntil != nil {
		q.ValidUntil = in.ValidUntil
	}
	if in.TemplateID != nil {
		q.TemplateID = *in.TemplateID
	}
	if in.AccessPassword != nil {
		q.AccessPassword = *in.AccessPassword
	}
	if in.SignatureData != nil {
		q.SignatureData = *in.SignatureData
	}

	now := uc.now()
	q.TotalValue = orcamento.Total(q.Services, q.Materials)
	if in.ContractTerms != nil {
		q.ContractTerms = *in.ContractTerms
	} else {
		profile, err := uc.profiles.GetByID(userID)
		if err != nil {
			return nil, err
		}
		q.ContractTerms = contract.Render(uc.templateContent(profile, q.TemplateID), q, q.CompanyInfo, now)
	}
	q.UpdatedAt = now

	err = uc.tx.RunQuotes(func(quotes repository.QuoteRepository) error {
		if err := quotes.Update(q); err != nil {
			return err
		}
		return quotes.SaveContract(q.ID, q.ContractTerms)
	})
	if err != nil {
		return nil, err
	}

	if in.Materials != nil {
		uc.cacheMaterials(userID, q.Materials)
	}

	return toQuoteResponse(q), nil
}

// Approve move SENT -> APPROVED e atribui o número de contrato.
func (uc *QuoteUseCase) Approve(userID, id string) (*dto.QuoteResponse, error) {
	q, err := uc.fetch(userID, id)
	if err != nil {
		return nil, err
	}
	if err := orcamento.Approve(q); err != nil {
		return nil, err
	}
	q.UpdatedAt = uc.now()
	if err := uc.quotes.Update(q); err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// Reject move SENT -> REJECTED (terminal).
func (uc *QuoteUseCase) Reject(userID, id string) (*dto.QuoteResponse, error) {
	q, err := uc.fetch(userID, id)
	if err != nil {
		return nil, err
	}
	if err := orcamento.Reject(q); err != nil {
		return nil, err
	}
	q.UpdatedAt = uc.now()
	if err := uc.quotes.Update(q); err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// Complete conclui o serviço: exige a assinatura do cliente (no orçamento ou
// enviada agora) e a assinatura do técnico no perfil; estampa conclusão e garantia.
func (uc *QuoteUseCase) Complete(userID, id string, in dto.CompleteQuoteRequest) (*dto.QuoteResponse, error) {
	q, err := uc.fetch(userID, id)
	if err != nil {
		return nil, err
	}
	if in.SignatureData != "" {
		q.SignatureData = in.SignatureData
	}

	profile, err := uc.profiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	techSignature := ""
	if profile != nil {
		techSignature = profile.TechSignature
	}

	if err := orcamento.Complete(q, techSignature, uc.now()); err != nil {
		return nil, err
	}
	q.UpdatedAt = uc.now()
	if err := uc.quotes.Update(q); err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// Delete remove o orçamento (e o contrato associado, na camada de persistência).
func (uc *QuoteUseCase) Delete(userID, id string) error {
	q, err := uc.fetch(userID, id)
	if err != nil {
		return err
	}
	return uc.quotes.Delete(q.ID, userID)
}

// fetch busca um orçamento do usuário ou devolve ErrNotFound.
func (uc *QuoteUseCase) fetch(userID, id string) (*entity.Quote, error) {
	q, err := uc.quotes.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

// templateContent resolve a seleção de modelo: modelos do usuário primeiro,
// depois os padrão; sem seleção válida, usa o primeiro modelo padrão.
func (uc *QuoteUseCase) templateContent(profile *entity.UserProfile, templateID string) string {
	if profile != nil {
		for _, t := range profile.ContractTemplates {
			if t.ID == templateID {
				return t.Content
			}
		}
	}
	defaults := contract.DefaultTemplates()
	for _, t := range defaults {
		if t.ID == templateID {
			return t.Content
		}
	}
	return defaults[0].Content
}

// cacheMaterials alimenta o catálogo de materiais do usuário (best-effort).
func (uc *QuoteUseCase) cacheMaterials(userID string, materials []entity.MaterialItem) {
	if len(materials) == 0 {
		return
	}
	entries := make([]entity.CatalogMaterial, 0, len(materials))
	for _, m := range materials {
		entries = append(entries, entity.CatalogMaterial{Name: m.Name, Brand: m.Brand, UnitPrice: m.UnitPrice})
	}
	if err := uc.profiles.AppendCatalogMaterials(userID, entries); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Msg("falha ao atualizar catálogo de materiais")
	}
}

func buildServices(in []dto.ServiceItemInput) ([]entity.ServiceItem, error) {
	services := make([]entity.ServiceItem, 0, len(in))
	for _, s := range in {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: serviço sem nome", domain.ErrInvalidInput)
		}
		if s.Price.IsNegative() {
			return nil, fmt.Errorf("%w: preço negativo em %q", domain.ErrInvalidInput, s.Name)
		}
		services = append(services, entity.ServiceItem{
			ID:          uuid.New().String(),
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
		})
	}
	return services, nil
}

func buildMaterials(in []dto.MaterialItemInput) ([]entity.MaterialItem, error) {
	materials := make([]entity.MaterialItem, 0, len(in))
	for _, m := range in {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: material sem nome", domain.ErrInvalidInput)
		}
		if m.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantidade deve ser positiva em %q", domain.ErrInvalidInput, m.Name)
		}
		if m.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: preço unitário negativo em %q", domain.ErrInvalidInput, m.Name)
		}
		item := entity.MaterialItem{
			ID:        uuid.New().String(),
			Name:      m.Name,
			Brand:     m.Brand,
			Quantity:  m.Quantity,
			UnitPrice: m.UnitPrice,
		}
		item.Recalculate()
		materials = append(materials, item)
	}
	return materials, nil
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	services := make([]dto.ServiceItemResponse, 0, len(q.Services))
	for _, s := range q.Services {
		services = append(services, dto.ServiceItemResponse{
			ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price,
		})
	}
	materials := make([]dto.MaterialItemResponse, 0, len(q.Materials))
	for _, m := range q.Materials {
		materials = append(materials, dto.MaterialItemResponse{
			ID: m.ID, Name: m.Name, Brand: m.Brand,
			Quantity: m.Quantity, UnitPrice: m.UnitPrice, TotalPrice: m.TotalPrice,
		})
	}
	return &dto.QuoteResponse{
		ID:               q.ID,
		Number:           q.Number,
		ContractNumber:   q.ContractNumber,
		Status:           q.Status,
		Client:           toClientResponse(&q.Client),
		Services:         services,
		Materials:        materials,
		WarrantyDuration: q.WarrantyDuration,
		PaymentTerms:     q.PaymentTerms,
		Date:             q.Date,
		ValidUntil:       q.ValidUntil,
		ContractTerms:    q.ContractTerms,
		CompletionDate:   q.CompletionDate,
		WarrantyUntil:    q.WarrantyUntil,
		SignatureData:    q.SignatureData,
		ViewedAt:         q.ViewedAt,
		PublicToken:      q.PublicToken,
		TotalValue:       q.TotalValue,
		ServicesTotal:    orcamento.ServicesTotal(q.Services),
		MaterialsTotal:   orcamento.MaterialsTotal(q.Materials),
	}
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Document:  c.Document,
		Email:     c.Email,
		Avatar:    c.Avatar,
		CreatedAt: c.CreatedAt,
	}
}
