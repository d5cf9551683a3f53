package repository

import "github.com/gestorpro/orcamentos-api/internal/domain/entity"

// ProfileRepository define o porto de persistência do perfil do usuário
// (dados de empresa, assinatura, catálogo de materiais e modelos de contrato).
type ProfileRepository interface {
	Create(profile *entity.UserProfile) error
	GetByID(userID string) (*entity.UserProfile, error)
	Update(profile *entity.UserProfile) error
	// AppendCatalogMaterials acrescenta entradas ao catálogo (append-only, cache).
	AppendCatalogMaterials(userID string, materials []entity.CatalogMaterial) error
}

// UserRepository define o porto de persistência de contas de autenticação.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}

// AuditRepository registra eventos de auditoria (best-effort, fire-and-forget:
// falha aqui nunca deve abortar a operação principal).
type AuditRepository interface {
	Record(userID, event string, details map[string]any) error
}

// CredentialRepository guarda a chave de API de IA registrada por usuário.
type CredentialRepository interface {
	GetAPIKey(userID string) (string, error)
	SaveAPIKey(userID, key string) error
}
