package usecase_test

import (
	"time"

	"github.com/gestorpro/orcamentos-api/internal/application/access"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

// Fakes em memória compartilhados pelos testes de casos de uso.

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// ──────────────────────────────────────────────────────────────────────────────
// fakeQuoteRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuoteRepo struct {
	quotes    map[string]*entity.Quote
	contracts map[string]string

	createErr   error
	updateErr   error
	viewedErr   error
	contractErr error
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{
		quotes:    make(map[string]*entity.Quote),
		contracts: make(map[string]string),
	}
}

func (f *fakeQuoteRepo) Create(q *entity.Quote) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *q
	f.quotes[q.ID] = &cp
	return nil
}

func (f *fakeQuoteRepo) GetByID(id, userID string) (*entity.Quote, error) {
	q, ok := f.quotes[id]
	if !ok || q.UserID != userID {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuoteRepo) ListByUser(userID string) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range f.quotes {
		if q.UserID == userID {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) Update(q *entity.Quote) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *q
	f.quotes[q.ID] = &cp
	return nil
}

func (f *fakeQuoteRepo) Delete(id, userID string) error {
	delete(f.quotes, id)
	delete(f.contracts, id)
	return nil
}

func (f *fakeQuoteRepo) GetByPublicToken(token string) (*entity.Quote, error) {
	for _, q := range f.quotes {
		if q.PublicToken == token {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeQuoteRepo) SetViewedAt(id string, viewedAt time.Time) error {
	if f.viewedErr != nil {
		return f.viewedErr
	}
	if q, ok := f.quotes[id]; ok {
		q.ViewedAt = &viewedAt
	}
	return nil
}

func (f *fakeQuoteRepo) SaveContract(quoteID, content string) error {
	if f.contractErr != nil {
		return f.contractErr
	}
	f.contracts[quoteID] = content
	return nil
}

func (f *fakeQuoteRepo) GetContract(quoteID string) (string, error) {
	return f.contracts[quoteID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeClientRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	f := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		f.clients[c.ID] = c
	}
	return f
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }

func (f *fakeClientRepo) GetByID(id, userID string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) ListByUser(userID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Update(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) Delete(id, userID string) error {
	delete(f.clients, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeProfileRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeProfileRepo struct {
	profile   *entity.UserProfile
	appended  []entity.CatalogMaterial
	appendErr error
}

func (f *fakeProfileRepo) Create(p *entity.UserProfile) error { f.profile = p; return nil }

func (f *fakeProfileRepo) GetByID(string) (*entity.UserProfile, error) {
	return f.profile, nil
}

func (f *fakeProfileRepo) Update(p *entity.UserProfile) error { f.profile = p; return nil }

func (f *fakeProfileRepo) AppendCatalogMaterials(_ string, materials []entity.CatalogMaterial) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, materials...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeAuditRepo e fakeTxRunner
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuditRepo struct {
	events []string
}

func (f *fakeAuditRepo) Record(_ string, event string, _ map[string]any) error {
	f.events = append(f.events, event)
	return nil
}

// fakeTxRunner executa o fn direto contra o repositório em memória.
// Sem transação de verdade: o que interessa é que orçamento e contrato
// passem pelo mesmo caminho.
type fakeTxRunner struct {
	repo *fakeQuoteRepo
	err  error
}

func (f *fakeTxRunner) RunQuotes(fn func(quotes repository.QuoteRepository) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(f.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Construtores de cenário
// ──────────────────────────────────────────────────────────────────────────────

func activeProfile() *entity.UserProfile {
	return &entity.UserProfile{
		ID: "user-1",
		CompanyInfo: entity.CompanyInfo{
			Name:        "Carlos Técnico",
			CompanyName: "CT Segurança Eletrônica LTDA",
			Document:    "12.345.678/0001-90",
			Phone:       "(11) 98888-7777",
			Address:     "Av. Central, 456",
		},
		Subscription: entity.Subscription{Status: entity.SubscriptionActive},
	}
}

func testClient() *entity.Client {
	return &entity.Client{
		ID:       "client-1",
		UserID:   "user-1",
		Name:     "João da Silva",
		Address:  "Rua das Flores, 123",
		Phone:    "(11) 99999-0000",
		Document: "123.456.789-00",
	}
}

func newTestGate(profiles repository.ProfileRepository, audit repository.AuditRepository) *access.Gate {
	return access.NewGate(profiles, audit, access.NewMemoryRateLimiter(time.Second), nil, fixedClock)
}
