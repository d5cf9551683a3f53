// Package access implementa o portão de controle de acesso: limite de
// requisições e direito de uso da IA, e o bloqueio de contas expiradas.
// No produto original estes cheques viviam no cliente; aqui a aplicação
// os impõe no servidor, antes de qualquer operação privilegiada.
package access

import (
	"time"

	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
	"github.com/gestorpro/orcamentos-api/internal/domain/subscription"
	"github.com/gestorpro/orcamentos-api/pkg/logger"
)

// Gate decide se operações privilegiadas (IA, criação de orçamento) são
// permitidas dado o estado de assinatura e o limitador injetado.
type Gate struct {
	profiles repository.ProfileRepository
	audit    repository.AuditRepository
	limiter  RateLimiter
	log      *logger.Logger
	now      func() time.Time
}

// NewGate constrói o portão. now permite fixar o relógio nos testes.
func NewGate(profiles repository.ProfileRepository, audit repository.AuditRepository, limiter RateLimiter, log *logger.Logger, now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{profiles: profiles, audit: audit, limiter: limiter, log: log, now: now}
}

// EnsureAIAccess valida, nesta ordem:
//  1. limite de requisições por usuário (ErrRateLimited);
//  2. direito de uso: somente assinatura "active"; trial é bloqueado de
//     propósito, é o portão de monetização (ErrSubscriptionRequired).
//
// O timestamp do limitador só é gravado quando todos os cheques passam.
func (g *Gate) EnsureAIAccess(userID string) error {
	now := g.now()
	if g.limiter.TooSoon(userID, now) {
		return domain.ErrRateLimited
	}

	profile, err := g.profiles.GetByID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrUserNotFound
	}
	if profile.Subscription.Status != entity.SubscriptionActive {
		return domain.ErrSubscriptionRequired
	}

	g.limiter.Record(userID, now)
	return nil
}

// EnsureAccountNotExpired bloqueia a ação quando a conta está expirada.
// Antes de devolver o erro, registra um evento de auditoria best-effort:
// falha no registro não impede o bloqueio.
func (g *Gate) EnsureAccountNotExpired(userID, action string) error {
	profile, err := g.profiles.GetByID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrUserNotFound
	}

	if !subscription.IsExpired(profile.Subscription, g.now()) {
		return nil
	}

	if auditErr := g.audit.Record(userID, "blocked_action", map[string]any{
		"action":    action,
		"timestamp": g.now().UTC().Format(time.RFC3339),
	}); auditErr != nil && g.log != nil {
		g.log.Warn().Err(auditErr).Str("action", action).Msg("falha ao registrar auditoria de bloqueio")
	}

	return domain.ErrSubscriptionExpired
}
