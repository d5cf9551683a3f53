package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/orcamentos-api/internal/application/dto"
	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
)

func newQuoteUseCase(t *testing.T) (*usecase.QuoteUseCase, *fakeQuoteRepo, *fakeProfileRepo) {
	t.Helper()
	quotes := newFakeQuoteRepo()
	clients := newFakeClientRepo(testClient())
	profiles := &fakeProfileRepo{profile: activeProfile()}
	tx := &fakeTxRunner{repo: quotes}
	gate := newTestGate(profiles, &fakeAuditRepo{})
	return usecase.NewQuoteUseCase(quotes, clients, profiles, tx, gate, nil, fixedClock), quotes, profiles
}

func createRequest() dto.CreateQuoteRequest {
	return dto.CreateQuoteRequest{
		ClientID: "client-1",
		Number:   "#0042",
		Services: []dto.ServiceItemInput{
			{Name: "Instalação de câmeras", Price: decimal.NewFromInt(500)},
		},
		Materials: []dto.MaterialItemInput{
			{Name: "Cabo coaxial", Brand: "Multitoc", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		},
		WarrantyDuration: 12,
		PaymentTerms:     "50% na entrada",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteCreate_NasceEnviadoComTotalETokenPublico(t *testing.T) {
	uc, quotes, _ := newQuoteUseCase(t)

	resp, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusSent, resp.Status, "criação vai direto para SENT, sem rascunho")
	assert.Equal(t, "600.00", resp.TotalValue.StringFixed(2))
	assert.Equal(t, "500.00", resp.ServicesTotal.StringFixed(2))
	assert.Equal(t, "100.00", resp.MaterialsTotal.StringFixed(2))
	assert.NotEmpty(t, resp.PublicToken)
	assert.Equal(t, "João da Silva", resp.Client.Name)
	assert.Equal(t, testNow, resp.Date)

	// Contrato gerado e persistido junto com o orçamento.
	assert.NotEmpty(t, resp.ContractTerms)
	assert.NotContains(t, resp.ContractTerms, "{{")
	assert.Equal(t, resp.ContractTerms, quotes.contracts[resp.ID])

	// Snapshot do emissor guardado no orçamento.
	stored := quotes.quotes[resp.ID]
	require.NotNil(t, stored.CompanyInfo)
	assert.Equal(t, "CT Segurança Eletrônica LTDA", stored.CompanyInfo.CompanyName)
}

// O snapshot é cópia: mudar o perfil depois não altera orçamentos já emitidos.
func TestQuoteCreate_SnapshotNaoSegueOPerfil(t *testing.T) {
	uc, quotes, profiles := newQuoteUseCase(t)

	resp, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	profiles.profile.CompanyName = "Novo Nome LTDA"
	assert.Equal(t, "CT Segurança Eletrônica LTDA", quotes.quotes[resp.ID].CompanyInfo.CompanyName)
}

func TestQuoteCreate_TotalDoMaterialRecalculadoNoServidor(t *testing.T) {
	uc, quotes, _ := newQuoteUseCase(t)

	resp, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	m := quotes.quotes[resp.ID].Materials[0]
	assert.Equal(t, "100.00", m.TotalPrice.StringFixed(2), "TotalPrice = Quantity * UnitPrice")
}

func TestQuoteCreate_ContratoExplicitoNaoEGerado(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)

	in := createRequest()
	in.ContractTerms = "Texto fechado à mão."

	resp, err := uc.Create("user-1", in)
	require.NoError(t, err)
	assert.Equal(t, "Texto fechado à mão.", resp.ContractTerms)
}

func TestQuoteCreate_ContaExpiradaBloqueia(t *testing.T) {
	uc, _, profiles := newQuoteUseCase(t)
	profiles.profile.Subscription.Status = entity.SubscriptionExpired

	_, err := uc.Create("user-1", createRequest())
	assert.ErrorIs(t, err, domain.ErrSubscriptionExpired)
}

func TestQuoteCreate_EntradasInvalidas(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)

	casos := map[string]func(*dto.CreateQuoteRequest){
		"sem cliente":          func(in *dto.CreateQuoteRequest) { in.ClientID = "" },
		"sem número":           func(in *dto.CreateQuoteRequest) { in.Number = "" },
		"serviço sem nome":     func(in *dto.CreateQuoteRequest) { in.Services[0].Name = "" },
		"preço negativo":       func(in *dto.CreateQuoteRequest) { in.Services[0].Price = decimal.NewFromInt(-1) },
		"quantidade zero":      func(in *dto.CreateQuoteRequest) { in.Materials[0].Quantity = 0 },
		"unitário negativo":    func(in *dto.CreateQuoteRequest) { in.Materials[0].UnitPrice = decimal.NewFromInt(-5) },
		"garantia negativa":    func(in *dto.CreateQuoteRequest) { in.WarrantyDuration = -1 },
	}
	for nome, mutate := range casos {
		t.Run(nome, func(t *testing.T) {
			in := createRequest()
			mutate(&in)
			_, err := uc.Create("user-1", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestQuoteCreate_ClienteDeOutroUsuario(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)

	in := createRequest()
	in.ClientID = "client-alheio"
	_, err := uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Materiais usados alimentam o catálogo; falha no catálogo não aborta a criação.
func TestQuoteCreate_AlimentaCatalogoDeMateriais(t *testing.T) {
	uc, _, profiles := newQuoteUseCase(t)

	_, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	require.Len(t, profiles.appended, 1)
	assert.Equal(t, "Cabo coaxial", profiles.appended[0].Name)
	assert.Equal(t, "Multitoc", profiles.appended[0].Brand)
}

func TestQuoteCreate_FalhaNoCatalogoNaoAborta(t *testing.T) {
	uc, _, profiles := newQuoteUseCase(t)
	profiles.appendErr = assert.AnError

	_, err := uc.Create("user-1", createRequest())
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteUpdate_RecalculaTotalERegeneraContrato(t *testing.T) {
	uc, quotes, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)
	antes := created.ContractTerms

	resp, err := uc.Update("user-1", created.ID, dto.UpdateQuoteRequest{
		Services: []dto.ServiceItemInput{
			{Name: "Manutenção completa", Price: decimal.NewFromInt(900)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "1000.00", resp.TotalValue.StringFixed(2), "900 de serviço + 100 de material")
	assert.NotEqual(t, antes, resp.ContractTerms, "edição regenera o texto do contrato")
	assert.Contains(t, resp.ContractTerms, "Manutenção completa")
	assert.Equal(t, resp.ContractTerms, quotes.contracts[resp.ID])
}

// Campos omitidos (nil) ficam como estão.
func TestQuoteUpdate_CamposOmitidosPreservados(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	novoPrazo := "à vista"
	resp, err := uc.Update("user-1", created.ID, dto.UpdateQuoteRequest{PaymentTerms: &novoPrazo})
	require.NoError(t, err)

	assert.Equal(t, "à vista", resp.PaymentTerms)
	assert.Equal(t, created.Number, resp.Number)
	assert.Len(t, resp.Services, 1)
	assert.Len(t, resp.Materials, 1)
	assert.Equal(t, "600.00", resp.TotalValue.StringFixed(2))
}

func TestQuoteUpdate_EstadoTerminalRejeitado(t *testing.T) {
	uc, quotes, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	quotes.quotes[created.ID].Status = entity.StatusCompleted

	prazo := "qualquer"
	_, err = uc.Update("user-1", created.ID, dto.UpdateQuoteRequest{PaymentTerms: &prazo})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestQuoteUpdate_ContratoExplicitoNaoRegenera(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	texto := "Cláusulas ajustadas à mão."
	resp, err := uc.Update("user-1", created.ID, dto.UpdateQuoteRequest{ContractTerms: &texto})
	require.NoError(t, err)
	assert.Equal(t, texto, resp.ContractTerms)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transições
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteApprove_AtribuiNumeroDeContrato(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	resp, err := uc.Approve("user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, resp.Status)
	assert.Equal(t, "CTR-0042", resp.ContractNumber)
}

func TestQuoteReject_Terminal(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	resp, err := uc.Reject("user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, resp.Status)

	_, err = uc.Approve("user-1", created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestQuoteComplete_ExigeAssinaturas(t *testing.T) {
	uc, _, profiles := newQuoteUseCase(t)
	profiles.profile.TechSignature = "assinatura-tecnico"

	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Approve("user-1", created.ID)
	require.NoError(t, err)

	// Sem a assinatura do cliente, não conclui.
	_, err = uc.Complete("user-1", created.ID, dto.CompleteQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrSignatureRequired)

	// Assinatura enviada na própria conclusão.
	resp, err := uc.Complete("user-1", created.ID, dto.CompleteQuoteRequest{SignatureData: "assinatura-cliente"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, resp.Status)
	require.NotNil(t, resp.CompletionDate)
	require.NotNil(t, resp.WarrantyUntil)
	assert.Equal(t, testNow.AddDate(0, 12, 0), *resp.WarrantyUntil)
}

func TestQuoteComplete_SemAssinaturaDoTecnico(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Approve("user-1", created.ID)
	require.NoError(t, err)

	_, err = uc.Complete("user-1", created.ID, dto.CompleteQuoteRequest{SignatureData: "assinatura-cliente"})
	assert.ErrorIs(t, err, domain.ErrSignatureRequired)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta e exclusão
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteGet_DeOutroUsuarioNaoAparece(t *testing.T) {
	uc, _, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	_, err = uc.Get("user-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteDelete_RemoveOrcamentoEContrato(t *testing.T) {
	uc, quotes, _ := newQuoteUseCase(t)
	created, err := uc.Create("user-1", createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete("user-1", created.ID))
	assert.Empty(t, quotes.quotes)
	assert.Empty(t, quotes.contracts)

	assert.ErrorIs(t, uc.Delete("user-1", created.ID), domain.ErrNotFound)
}
