package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
)

func seedPublicQuote(repo *fakeQuoteRepo, password string) *entity.Quote {
	q := &entity.Quote{
		ID:             "quote-1",
		UserID:         "user-1",
		Number:         "#0042",
		Status:         entity.StatusSent,
		Client:         *testClient(),
		PublicToken:    "tok-abc",
		AccessPassword: password,
	}
	repo.quotes[q.ID] = q
	return q
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckAccess
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicCheckAccess(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "1234")
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	casos := map[string]struct {
		token     string
		exists    bool
		comSenha  bool
	}{
		"token válido com senha": {"tok-abc", true, true},
		"token desconhecido":     {"tok-xyz", false, false},
		"token vazio":            {"", false, false},
	}
	for nome, tc := range casos {
		t.Run(nome, func(t *testing.T) {
			resp, err := uc.CheckAccess(tc.token)
			// Token inexistente não é erro: a resposta é que não existe.
			require.NoError(t, err)
			assert.Equal(t, tc.exists, resp.Exists)
			assert.Equal(t, tc.comSenha, resp.RequiresPassword)
		})
	}
}

func TestPublicCheckAccess_SemSenhaNaoExige(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "")
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	resp, err := uc.CheckAccess("tok-abc")
	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.False(t, resp.RequiresPassword)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicResolve_EntregaEEstampaVisualizacao(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "1234")
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	resp, err := uc.Resolve("tok-abc", "1234")
	require.NoError(t, err)

	assert.Equal(t, "#0042", resp.Number)
	require.NotNil(t, resp.ViewedAt)
	assert.Equal(t, testNow, *resp.ViewedAt)
	// O visitante já tem o token na URL; a resposta não o repete.
	assert.Empty(t, resp.PublicToken)
	// A senha nunca sai em resposta nenhuma, mas a estampa persiste.
	require.NotNil(t, repo.quotes["quote-1"].ViewedAt)
}

func TestPublicResolve_SenhaErrada(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "1234")
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	_, err := uc.Resolve("tok-abc", "0000")
	assert.ErrorIs(t, err, domain.ErrBadPassword)

	_, err = uc.Resolve("tok-abc", "")
	assert.ErrorIs(t, err, domain.ErrBadPassword)
}

func TestPublicResolve_SemSenhaQualquerValorPassa(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "")
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	_, err := uc.Resolve("tok-abc", "irrelevante")
	assert.NoError(t, err)
}

func TestPublicResolve_TokenDesconhecido(t *testing.T) {
	uc := usecase.NewPublicUseCase(newFakeQuoteRepo(), nil, fixedClock)

	_, err := uc.Resolve("tok-xyz", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Estampa de visualização é best-effort: falha não impede a entrega.
func TestPublicResolve_FalhaNaEstampaNaoImpedeEntrega(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "")
	repo.viewedErr = assert.AnError
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	resp, err := uc.Resolve("tok-abc", "")
	require.NoError(t, err)
	assert.Nil(t, resp.ViewedAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve público
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicApprove_AprovaComSenha(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "1234")
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	resp, err := uc.Approve("tok-abc", "1234")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, resp.Status)
	assert.Equal(t, "CTR-0042", resp.ContractNumber)
	assert.Equal(t, entity.StatusApproved, repo.quotes["quote-1"].Status)
}

func TestPublicApprove_SenhaErradaNaoAprova(t *testing.T) {
	repo := newFakeQuoteRepo()
	seedPublicQuote(repo, "1234")
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	_, err := uc.Approve("tok-abc", "0000")
	assert.ErrorIs(t, err, domain.ErrBadPassword)
	assert.Equal(t, entity.StatusSent, repo.quotes["quote-1"].Status)
}

func TestPublicApprove_SomenteDeSent(t *testing.T) {
	repo := newFakeQuoteRepo()
	q := seedPublicQuote(repo, "")
	q.Status = entity.StatusApproved
	uc := usecase.NewPublicUseCase(repo, nil, fixedClock)

	_, err := uc.Approve("tok-abc", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
