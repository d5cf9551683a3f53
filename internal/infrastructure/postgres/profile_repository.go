package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementação de ProfileRepository (usável com pool ou tx).
// Catálogo de materiais e modelos de contrato são colunas jsonb.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

type catalogMaterialJSON struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type contractTemplateJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon,omitempty"`
	Content string `json:"content"`
}

// Create persiste um novo perfil.
func (r *ProfileRepo) Create(profile *entity.UserProfile) error {
	query := `
		INSERT INTO profiles (id, name, company_name, document, email, phone, address, logo,
			tech_signature, pix_key, bank_info, subscription_status, subscription_plan,
			trial_ends_at, subscription_ends_at, activated_at, material_catalog,
			contract_templates, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	catalog, templates, err := marshalProfileJSON(profile)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(), query,
		profile.ID, profile.Name, profile.CompanyName, profile.Document, profile.Email,
		profile.Phone, profile.Address, profile.Logo, profile.TechSignature, profile.PixKey,
		profile.BankInfo, profile.Subscription.Status, profile.Subscription.Plan,
		profile.Subscription.TrialEndsAt, profile.Subscription.EndsAt, profile.Subscription.ActivatedAt,
		catalog, templates, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtém o perfil do usuário (mesmo ID da conta).
func (r *ProfileRepo) GetByID(userID string) (*entity.UserProfile, error) {
	query := `
		SELECT id, name, company_name, document, email, phone, address, logo, tech_signature,
			pix_key, bank_info, subscription_status, subscription_plan, trial_ends_at,
			subscription_ends_at, activated_at, material_catalog, contract_templates,
			created_at, updated_at
		FROM profiles WHERE id = $1`
	var p entity.UserProfile
	var catalog, templates []byte
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.Name, &p.CompanyName, &p.Document, &p.Email, &p.Phone, &p.Address, &p.Logo,
		&p.TechSignature, &p.PixKey, &p.BankInfo, &p.Subscription.Status, &p.Subscription.Plan,
		&p.Subscription.TrialEndsAt, &p.Subscription.EndsAt, &p.Subscription.ActivatedAt,
		&catalog, &templates, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if len(catalog) > 0 {
		var entries []catalogMaterialJSON
		if err := json.Unmarshal(catalog, &entries); err != nil {
			return nil, fmt.Errorf("unmarshal material_catalog: %w", err)
		}
		p.MaterialCatalog = make([]entity.CatalogMaterial, 0, len(entries))
		for _, e := range entries {
			p.MaterialCatalog = append(p.MaterialCatalog, entity.CatalogMaterial{Name: e.Name, Brand: e.Brand, UnitPrice: e.UnitPrice})
		}
	}
	if len(templates) > 0 {
		var entries []contractTemplateJSON
		if err := json.Unmarshal(templates, &entries); err != nil {
			return nil, fmt.Errorf("unmarshal contract_templates: %w", err)
		}
		p.ContractTemplates = make([]entity.ContractTemplate, 0, len(entries))
		for _, e := range entries {
			p.ContractTemplates = append(p.ContractTemplates, entity.ContractTemplate{ID: e.ID, Name: e.Name, Icon: e.Icon, Content: e.Content})
		}
	}
	return &p, nil
}

// Update atualiza o perfil inteiro, incluindo assinatura e coleções.
func (r *ProfileRepo) Update(profile *entity.UserProfile) error {
	query := `
		UPDATE profiles SET name = $2, company_name = $3, document = $4, email = $5, phone = $6,
			address = $7, logo = $8, tech_signature = $9, pix_key = $10, bank_info = $11,
			subscription_status = $12, subscription_plan = $13, trial_ends_at = $14,
			subscription_ends_at = $15, activated_at = $16, material_catalog = $17,
			contract_templates = $18, updated_at = $19
		WHERE id = $1`
	catalog, templates, err := marshalProfileJSON(profile)
	if err != nil {
		return err
	}
	cmd, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Name, profile.CompanyName, profile.Document, profile.Email,
		profile.Phone, profile.Address, profile.Logo, profile.TechSignature, profile.PixKey,
		profile.BankInfo, profile.Subscription.Status, profile.Subscription.Plan,
		profile.Subscription.TrialEndsAt, profile.Subscription.EndsAt, profile.Subscription.ActivatedAt,
		catalog, templates, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AppendCatalogMaterials acrescenta entradas ao catálogo via concatenação
// jsonb, sem reescrever o restante do perfil.
func (r *ProfileRepo) AppendCatalogMaterials(userID string, materials []entity.CatalogMaterial) error {
	if len(materials) == 0 {
		return nil
	}
	entries := make([]catalogMaterialJSON, 0, len(materials))
	for _, m := range materials {
		entries = append(entries, catalogMaterialJSON{Name: m.Name, Brand: m.Brand, UnitPrice: m.UnitPrice})
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal catalog entries: %w", err)
	}
	query := `
		UPDATE profiles
		SET material_catalog = COALESCE(material_catalog, '[]'::jsonb) || $2::jsonb, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, userID, payload)
	if err != nil {
		return fmt.Errorf("append material catalog: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func marshalProfileJSON(profile *entity.UserProfile) (catalog, templates []byte, err error) {
	cat := make([]catalogMaterialJSON, 0, len(profile.MaterialCatalog))
	for _, m := range profile.MaterialCatalog {
		cat = append(cat, catalogMaterialJSON{Name: m.Name, Brand: m.Brand, UnitPrice: m.UnitPrice})
	}
	catalog, err = json.Marshal(cat)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal material_catalog: %w", err)
	}

	tpl := make([]contractTemplateJSON, 0, len(profile.ContractTemplates))
	for _, t := range profile.ContractTemplates {
		tpl = append(tpl, contractTemplateJSON{ID: t.ID, Name: t.Name, Icon: t.Icon, Content: t.Content})
	}
	templates, err = json.Marshal(tpl)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal contract_templates: %w", err)
	}
	return catalog, templates, nil
}
