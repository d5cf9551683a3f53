package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

// ProfileUseCase gestão do perfil: dados de empresa, assinatura (leitura),
// catálogo de materiais e modelos de contrato.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
}

// NewProfileUseCase constrói o caso de uso.
func NewProfileUseCase(profiles repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// Get devolve o perfil do usuário.
func (uc *ProfileUseCase) Get(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.fetch(userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Update atualiza os dados de empresa do perfil. O estado de assinatura é
// gerido pelo fluxo de pagamento, nunca por aqui.
func (uc *ProfileUseCase) Update(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.fetch(userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		profile.Name = *in.Name
	}
	if in.CompanyName != nil {
		profile.CompanyName = *in.CompanyName
	}
	if in.Document != nil {
		profile.Document = *in.Document
	}
	if in.Email != nil {
		profile.Email = *in.Email
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Address != nil {
		profile.Address = *in.Address
	}
	if in.Logo != nil {
		profile.Logo = *in.Logo
	}
	if in.TechSignature != nil {
		profile.TechSignature = *in.TechSignature
	}
	if in.PixKey != nil {
		profile.PixKey = *in.PixKey
	}
	if in.BankInfo != nil {
		profile.BankInfo = *in.BankInfo
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profiles.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// SaveTemplate cria ou atualiza um modelo de contrato nomeado do usuário.
func (uc *ProfileUseCase) SaveTemplate(userID, templateID string, in dto.ContractTemplateInput) (*dto.ProfileResponse, error) {
	if in.Name == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.fetch(userID)
	if err != nil {
		return nil, err
	}
	if templateID == "" {
		templateID = uuid.New().String()
	}
	updated := false
	for i, t := range profile.ContractTemplates {
		if t.ID == templateID {
			profile.ContractTemplates[i] = entity.ContractTemplate{
				ID: templateID, Name: in.Name, Icon: in.Icon, Content: in.Content,
			}
			updated = true
			break
		}
	}
	if !updated {
		profile.ContractTemplates = append(profile.ContractTemplates, entity.ContractTemplate{
			ID: templateID, Name: in.Name, Icon: in.Icon, Content: in.Content,
		})
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profiles.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// DeleteTemplate remove um modelo de contrato do usuário.
func (uc *ProfileUseCase) DeleteTemplate(userID, templateID string) (*dto.ProfileResponse, error) {
	profile, err := uc.fetch(userID)
	if err != nil {
		return nil, err
	}
	kept := profile.ContractTemplates[:0]
	found := false
	for _, t := range profile.ContractTemplates {
		if t.ID == templateID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	profile.ContractTemplates = kept
	profile.UpdatedAt = time.Now()
	if err := uc.profiles.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (uc *ProfileUseCase) fetch(userID string) (*entity.UserProfile, error) {
	profile, err := uc.profiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return profile, nil
}

func toProfileResponse(p *entity.UserProfile) *dto.ProfileResponse {
	catalog := make([]dto.CatalogMaterialResponse, 0, len(p.MaterialCatalog))
	for _, m := range p.MaterialCatalog {
		catalog = append(catalog, dto.CatalogMaterialResponse{Name: m.Name, Brand: m.Brand, UnitPrice: m.UnitPrice})
	}
	templates := make([]dto.ContractTemplateResponse, 0, len(p.ContractTemplates))
	for _, t := range p.ContractTemplates {
		templates = append(templates, dto.ContractTemplateResponse{ID: t.ID, Name: t.Name, Icon: t.Icon, Content: t.Content})
	}
	return &dto.ProfileResponse{
		ID:                 p.ID,
		Name:               p.Name,
		CompanyName:        p.CompanyName,
		Document:           p.Document,
		Email:              p.Email,
		Phone:              p.Phone,
		Address:            p.Address,
		Logo:               p.Logo,
		TechSignature:      p.TechSignature,
		PixKey:             p.PixKey,
		BankInfo:           p.BankInfo,
		SubscriptionStatus: p.Subscription.Status,
		SubscriptionPlan:   p.Subscription.Plan,
		TrialEndsAt:        p.Subscription.TrialEndsAt,
		SubscriptionEndsAt: p.Subscription.EndsAt,
		MaterialCatalog:    catalog,
		ContractTemplates:  templates,
	}
}
