package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/contract"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
	"github.com/gestorpro/orcamentos-api/pkg/jwt"
)

// Período de avaliação concedido a contas novas.
const trialDays = 7

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner executa o cadastro (conta + perfil) dentro de uma transação.
type TxRunner interface {
	RunSignup(fn func(users repository.UserRepository, profiles repository.ProfileRepository) error) error
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	users  repository.UserRepository
	tx     TxRunner
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, tx: tx, jwtCfg: jwtCfg}
}

// Register cria a conta: hash da senha com bcrypt, usuário e perfil inicial
// em trial com os modelos de contrato padrão semeados.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	name := in.Name
	if name == "" {
		name = in.Email
	}
	trialEnds := now.AddDate(0, 0, trialDays)
	profile := &entity.UserProfile{
		ID: user.ID,
		CompanyInfo: entity.CompanyInfo{
			Name:  name,
			Email: in.Email,
		},
		Subscription: entity.Subscription{
			Status:      entity.SubscriptionTrial,
			TrialEndsAt: &trialEnds,
		},
		ContractTemplates: contract.DefaultTemplates(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// Conta e perfil nascem juntos ou não nascem.
	err = uc.tx.RunSignup(func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return profiles.Create(profile)
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ID: user.ID, Email: user.Email}, nil
}

// Login verifica email/senha e gera o JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ID: user.ID, Email: user.Email}, nil
}
