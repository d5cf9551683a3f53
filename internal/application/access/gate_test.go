package access_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/orcamentos-api/internal/application/access"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProfiles struct {
	profile *entity.UserProfile
	err     error
}

func (f *fakeProfiles) Create(*entity.UserProfile) error { return nil }
func (f *fakeProfiles) GetByID(string) (*entity.UserProfile, error) {
	return f.profile, f.err
}
func (f *fakeProfiles) Update(*entity.UserProfile) error { return nil }
func (f *fakeProfiles) AppendCatalogMaterials(string, []entity.CatalogMaterial) error {
	return nil
}

type auditCall struct {
	userID  string
	event   string
	details map[string]any
}

type fakeAudit struct {
	calls []auditCall
	err   error
}

func (f *fakeAudit) Record(userID, event string, details map[string]any) error {
	f.calls = append(f.calls, auditCall{userID, event, details})
	return f.err
}

var gateNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return gateNow }

func activeProfile() *entity.UserProfile {
	return &entity.UserProfile{
		ID:           "user-1",
		Subscription: entity.Subscription{Status: entity.SubscriptionActive},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureAIAccess
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureAIAccess_AssinaturaAtivaPassa(t *testing.T) {
	limiter := access.NewMemoryRateLimiter(30 * time.Second)
	gate := access.NewGate(&fakeProfiles{profile: activeProfile()}, &fakeAudit{}, limiter, nil, fixedClock)

	require.NoError(t, gate.EnsureAIAccess("user-1"))

	// A janela foi consumida: chamada imediata em seguida é bloqueada.
	assert.ErrorIs(t, gate.EnsureAIAccess("user-1"), domain.ErrRateLimited)
}

func TestEnsureAIAccess_JanelaExpiraEVoltaAPermitir(t *testing.T) {
	relogio := gateNow
	limiter := access.NewMemoryRateLimiter(30 * time.Second)
	gate := access.NewGate(&fakeProfiles{profile: activeProfile()}, &fakeAudit{}, limiter, nil, func() time.Time { return relogio })

	require.NoError(t, gate.EnsureAIAccess("user-1"))

	relogio = relogio.Add(29 * time.Second)
	assert.ErrorIs(t, gate.EnsureAIAccess("user-1"), domain.ErrRateLimited)

	relogio = relogio.Add(time.Second)
	assert.NoError(t, gate.EnsureAIAccess("user-1"))
}

// Janelas são por usuário: o bloqueio de um não afeta o outro.
func TestEnsureAIAccess_LimitePorUsuario(t *testing.T) {
	limiter := access.NewMemoryRateLimiter(30 * time.Second)
	gate := access.NewGate(&fakeProfiles{profile: activeProfile()}, &fakeAudit{}, limiter, nil, fixedClock)

	require.NoError(t, gate.EnsureAIAccess("user-1"))
	assert.NoError(t, gate.EnsureAIAccess("user-2"))
}

// Trial não dá direito à IA. É o portão de monetização.
func TestEnsureAIAccess_TrialBloqueado(t *testing.T) {
	profile := activeProfile()
	profile.Subscription.Status = entity.SubscriptionTrial
	limiter := access.NewMemoryRateLimiter(30 * time.Second)
	gate := access.NewGate(&fakeProfiles{profile: profile}, &fakeAudit{}, limiter, nil, fixedClock)

	assert.ErrorIs(t, gate.EnsureAIAccess("user-1"), domain.ErrSubscriptionRequired)

	// Cheque reprovado não consome a janela: corrigida a assinatura,
	// a próxima chamada passa direto.
	profile.Subscription.Status = entity.SubscriptionActive
	assert.NoError(t, gate.EnsureAIAccess("user-1"))
}

func TestEnsureAIAccess_PerfilInexistente(t *testing.T) {
	limiter := access.NewMemoryRateLimiter(30 * time.Second)
	gate := access.NewGate(&fakeProfiles{}, &fakeAudit{}, limiter, nil, fixedClock)

	assert.ErrorIs(t, gate.EnsureAIAccess("ghost"), domain.ErrUserNotFound)
}

func TestEnsureAIAccess_ErroDoRepositorioPropaga(t *testing.T) {
	boom := errors.New("conexão caiu")
	limiter := access.NewMemoryRateLimiter(30 * time.Second)
	gate := access.NewGate(&fakeProfiles{err: boom}, &fakeAudit{}, limiter, nil, fixedClock)

	assert.ErrorIs(t, gate.EnsureAIAccess("user-1"), boom)
}

// O limite vem antes da consulta ao perfil: usuário bloqueado recebe
// ErrRateLimited mesmo se o perfil estiver indisponível.
func TestEnsureAIAccess_LimiteAvaliadoAntesDoPerfil(t *testing.T) {
	limiter := access.NewMemoryRateLimiter(30 * time.Second)
	limiter.Record("user-1", gateNow)
	gate := access.NewGate(&fakeProfiles{err: errors.New("indisponível")}, &fakeAudit{}, limiter, nil, fixedClock)

	assert.ErrorIs(t, gate.EnsureAIAccess("user-1"), domain.ErrRateLimited)
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureAccountNotExpired
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureAccountNotExpired_ContaVigentePassaSemAuditoria(t *testing.T) {
	audit := &fakeAudit{}
	gate := access.NewGate(&fakeProfiles{profile: activeProfile()}, audit, access.NewMemoryRateLimiter(time.Second), nil, fixedClock)

	require.NoError(t, gate.EnsureAccountNotExpired("user-1", "create_quote"))
	assert.Empty(t, audit.calls)
}

func TestEnsureAccountNotExpired_ContaExpiradaBloqueiaEAudita(t *testing.T) {
	profile := activeProfile()
	profile.Subscription.Status = entity.SubscriptionExpired
	audit := &fakeAudit{}
	gate := access.NewGate(&fakeProfiles{profile: profile}, audit, access.NewMemoryRateLimiter(time.Second), nil, fixedClock)

	err := gate.EnsureAccountNotExpired("user-1", "create_quote")

	assert.ErrorIs(t, err, domain.ErrSubscriptionExpired)
	require.Len(t, audit.calls, 1)
	assert.Equal(t, "user-1", audit.calls[0].userID)
	assert.Equal(t, "blocked_action", audit.calls[0].event)
	assert.Equal(t, "create_quote", audit.calls[0].details["action"])
	assert.Equal(t, gateNow.UTC().Format(time.RFC3339), audit.calls[0].details["timestamp"])
}

// Auditoria é best-effort: se o registro falha, o bloqueio permanece.
func TestEnsureAccountNotExpired_FalhaDeAuditoriaNaoDestrava(t *testing.T) {
	profile := activeProfile()
	profile.Subscription.Status = entity.SubscriptionExpired
	audit := &fakeAudit{err: errors.New("tabela cheia")}
	gate := access.NewGate(&fakeProfiles{profile: profile}, audit, access.NewMemoryRateLimiter(time.Second), nil, fixedClock)

	assert.ErrorIs(t, gate.EnsureAccountNotExpired("user-1", "generate_pdf"), domain.ErrSubscriptionExpired)
}

func TestEnsureAccountNotExpired_TrialVencidoBloqueia(t *testing.T) {
	vencido := gateNow.Add(-24 * time.Hour)
	profile := activeProfile()
	profile.Subscription = entity.Subscription{Status: entity.SubscriptionTrial, TrialEndsAt: &vencido}
	gate := access.NewGate(&fakeProfiles{profile: profile}, &fakeAudit{}, access.NewMemoryRateLimiter(time.Second), nil, fixedClock)

	assert.ErrorIs(t, gate.EnsureAccountNotExpired("user-1", "create_quote"), domain.ErrSubscriptionExpired)
}

func TestEnsureAccountNotExpired_PerfilInexistente(t *testing.T) {
	gate := access.NewGate(&fakeProfiles{}, &fakeAudit{}, access.NewMemoryRateLimiter(time.Second), nil, fixedClock)

	assert.ErrorIs(t, gate.EnsureAccountNotExpired("ghost", "create_quote"), domain.ErrUserNotFound)
}
