package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementação de QuoteRepository (usável com pool ou tx).
// Itens, cliente e snapshot do emissor vivem em colunas jsonb da própria
// linha; o texto do contrato em tabela própria (contracts), um registro por
// orçamento.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `
	q.id, q.user_id, q.number, q.contract_number, q.client, q.services, q.materials,
	q.company_info, q.warranty_duration, q.payment_terms, q.valid_until, q.template_id,
	q.status, q.date, COALESCE(c.content, '') AS contract_terms, q.completion_date,
	q.warranty_until, q.signature_data, q.viewed_at, q.public_token, q.access_password,
	q.total_value, q.created_at, q.updated_at`

// Create persiste um novo orçamento.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, user_id, number, contract_number, client, services, materials,
			company_info, warranty_duration, payment_terms, valid_until, template_id, status, date,
			completion_date, warranty_until, signature_data, viewed_at, public_token, access_password,
			total_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	client, services, materials, company, err := marshalQuoteJSON(quote)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(), query,
		quote.ID, quote.UserID, quote.Number, quote.ContractNumber, client, services, materials,
		company, quote.WarrantyDuration, quote.PaymentTerms, quote.ValidUntil, quote.TemplateID,
		quote.Status, quote.Date, quote.CompletionDate, quote.WarrantyUntil, quote.SignatureData,
		quote.ViewedAt, quote.PublicToken, quote.AccessPassword, quote.TotalValue,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtém um orçamento do usuário por ID.
func (r *QuoteRepo) GetByID(id, userID string) (*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes q LEFT JOIN contracts c ON c.quote_id = q.id
		WHERE q.id = $1 AND q.user_id = $2`
	q, err := scanQuote(r.q.QueryRow(context.Background(), query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

// ListByUser lista os orçamentos do usuário, mais recentes primeiro.
func (r *QuoteRepo) ListByUser(userID string) ([]*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes q LEFT JOIN contracts c ON c.quote_id = q.id
		WHERE q.user_id = $1 ORDER BY q.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// Update atualiza um orçamento existente.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET number = $2, contract_number = $3, client = $4, services = $5,
			materials = $6, company_info = $7, warranty_duration = $8, payment_terms = $9,
			valid_until = $10, template_id = $11, status = $12, completion_date = $13,
			warranty_until = $14, signature_data = $15, viewed_at = $16, access_password = $17,
			total_value = $18, updated_at = $19
		WHERE id = $1`
	client, services, materials, company, err := marshalQuoteJSON(quote)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(), query,
		quote.ID, quote.Number, quote.ContractNumber, client, services, materials, company,
		quote.WarrantyDuration, quote.PaymentTerms, quote.ValidUntil, quote.TemplateID,
		quote.Status, quote.CompletionDate, quote.WarrantyUntil, quote.SignatureData,
		quote.ViewedAt, quote.AccessPassword, quote.TotalValue, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// Delete remove um orçamento do usuário e o contrato associado.
func (r *QuoteRepo) Delete(id, userID string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM contracts WHERE quote_id = $1`, id); err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM quotes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByPublicToken obtém um orçamento pelo token de compartilhamento, sem
// escopo de usuário (acesso público).
func (r *QuoteRepo) GetByPublicToken(token string) (*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes q LEFT JOIN contracts c ON c.quote_id = q.id
		WHERE q.public_token = $1`
	q, err := scanQuote(r.q.QueryRow(context.Background(), query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote by token: %w", err)
	}
	return q, nil
}

// SetViewedAt estampa/atualiza a visualização pública do orçamento.
func (r *QuoteRepo) SetViewedAt(id string, viewedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET viewed_at = $2 WHERE id = $1`, id, viewedAt)
	if err != nil {
		return fmt.Errorf("set viewed_at: %w", err)
	}
	return nil
}

// SaveContract grava o texto do contrato (upsert por quote_id).
func (r *QuoteRepo) SaveContract(quoteID, content string) error {
	query := `
		INSERT INTO contracts (quote_id, content, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (quote_id) DO UPDATE SET content = EXCLUDED.content, updated_at = now()`
	if _, err := r.q.Exec(context.Background(), query, quoteID, content); err != nil {
		return fmt.Errorf("save contract: %w", err)
	}
	return nil
}

// GetContract devolve o texto do contrato de um orçamento ("" se não existir).
func (r *QuoteRepo) GetContract(quoteID string) (string, error) {
	var content string
	err := r.q.QueryRow(context.Background(),
		`SELECT content FROM contracts WHERE quote_id = $1`, quoteID).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get contract: %w", err)
	}
	return content, nil
}

// Formas serializadas das colunas jsonb. As entidades de domínio não carregam
// tags de serialização; a forma persistida é decisão deste adaptador.
type clientJSON struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type serviceItemJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type materialItemJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type companyInfoJSON struct {
	Name          string `json:"name"`
	CompanyName   string `json:"company_name,omitempty"`
	Document      string `json:"document,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Logo          string `json:"logo,omitempty"`
	TechSignature string `json:"tech_signature,omitempty"`
	PixKey        string `json:"pix_key,omitempty"`
	BankInfo      string `json:"bank_info,omitempty"`
}

func marshalQuoteJSON(quote *entity.Quote) (client, services, materials, company []byte, err error) {
	c := quote.Client
	client, err = json.Marshal(clientJSON{
		ID: c.ID, UserID: c.UserID, Name: c.Name, Address: c.Address,
		Phone: c.Phone, Document: c.Document, Email: c.Email, Avatar: c.Avatar,
	})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal client: %w", err)
	}

	svc := make([]serviceItemJSON, 0, len(quote.Services))
	for _, s := range quote.Services {
		svc = append(svc, serviceItemJSON{ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price})
	}
	services, err = json.Marshal(svc)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal services: %w", err)
	}

	mat := make([]materialItemJSON, 0, len(quote.Materials))
	for _, m := range quote.Materials {
		mat = append(mat, materialItemJSON{
			ID: m.ID, Name: m.Name, Brand: m.Brand,
			Quantity: m.Quantity, UnitPrice: m.UnitPrice, TotalPrice: m.TotalPrice,
		})
	}
	materials, err = json.Marshal(mat)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal materials: %w", err)
	}

	if quote.CompanyInfo != nil {
		ci := quote.CompanyInfo
		company, err = json.Marshal(companyInfoJSON{
			Name: ci.Name, CompanyName: ci.CompanyName, Document: ci.Document,
			Email: ci.Email, Phone: ci.Phone, Address: ci.Address, Logo: ci.Logo,
			TechSignature: ci.TechSignature, PixKey: ci.PixKey, BankInfo: ci.BankInfo,
		})
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("marshal company_info: %w", err)
		}
	}
	return client, services, materials, company, nil
}

// rowScanner cobre pgx.Row e pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*entity.Quote, error) {
	var q entity.Quote
	var client, services, materials, company []byte
	err := row.Scan(
		&q.ID, &q.UserID, &q.Number, &q.ContractNumber, &client, &services, &materials,
		&company, &q.WarrantyDuration, &q.PaymentTerms, &q.ValidUntil, &q.TemplateID,
		&q.Status, &q.Date, &q.ContractTerms, &q.CompletionDate,
		&q.WarrantyUntil, &q.SignatureData, &q.ViewedAt, &q.PublicToken, &q.AccessPassword,
		&q.TotalValue, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	var cj clientJSON
	if err := json.Unmarshal(client, &cj); err != nil {
		return nil, fmt.Errorf("unmarshal client: %w", err)
	}
	q.Client = entity.Client{
		ID: cj.ID, UserID: cj.UserID, Name: cj.Name, Address: cj.Address,
		Phone: cj.Phone, Document: cj.Document, Email: cj.Email, Avatar: cj.Avatar,
	}

	var svc []serviceItemJSON
	if err := json.Unmarshal(services, &svc); err != nil {
		return nil, fmt.Errorf("unmarshal services: %w", err)
	}
	q.Services = make([]entity.ServiceItem, 0, len(svc))
	for _, s := range svc {
		q.Services = append(q.Services, entity.ServiceItem{ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price})
	}

	var mat []materialItemJSON
	if err := json.Unmarshal(materials, &mat); err != nil {
		return nil, fmt.Errorf("unmarshal materials: %w", err)
	}
	q.Materials = make([]entity.MaterialItem, 0, len(mat))
	for _, m := range mat {
		q.Materials = append(q.Materials, entity.MaterialItem{
			ID: m.ID, Name: m.Name, Brand: m.Brand,
			Quantity: m.Quantity, UnitPrice: m.UnitPrice, TotalPrice: m.TotalPrice,
		})
	}

	if len(company) > 0 {
		var ci companyInfoJSON
		if err := json.Unmarshal(company, &ci); err != nil {
			return nil, fmt.Errorf("unmarshal company_info: %w", err)
		}
		q.CompanyInfo = &entity.CompanyInfo{
			Name: ci.Name, CompanyName: ci.CompanyName, Document: ci.Document,
			Email: ci.Email, Phone: ci.Phone, Address: ci.Address, Logo: ci.Logo,
			TechSignature: ci.TechSignature, PixKey: ci.PixKey, BankInfo: ci.BankInfo,
		}
	}
	return &q, nil
}
