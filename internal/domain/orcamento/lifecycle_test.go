package orcamento_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/orcamento"
)

var clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de transições
// ──────────────────────────────────────────────────────────────────────────────

// Toda combinação de estados: só SENT->APPROVED, SENT->REJECTED e
// APPROVED->COMPLETED são legais. DRAFT não sai para lugar nenhum.
func TestCanTransition_MatrizCompleta(t *testing.T) {
	all := []string{
		entity.StatusDraft, entity.StatusSent, entity.StatusApproved,
		entity.StatusRejected, entity.StatusCompleted,
	}
	legais := map[[2]string]bool{
		{entity.StatusSent, entity.StatusApproved}:      true,
		{entity.StatusSent, entity.StatusRejected}:      true,
		{entity.StatusApproved, entity.StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			esperado := legais[[2]string{from, to}]
			assert.Equal(t, esperado, orcamento.CanTransition(from, to),
				"transição %s -> %s", from, to)
		}
	}
}

func TestCanEdit_EstadosTerminaisBloqueiam(t *testing.T) {
	assert.True(t, orcamento.CanEdit(entity.StatusDraft))
	assert.True(t, orcamento.CanEdit(entity.StatusSent))
	assert.True(t, orcamento.CanEdit(entity.StatusApproved))
	assert.False(t, orcamento.CanEdit(entity.StatusRejected))
	assert.False(t, orcamento.CanEdit(entity.StatusCompleted))
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_AtribuiNumeroDeContrato(t *testing.T) {
	q := &entity.Quote{Status: entity.StatusSent, Number: "#0042"}

	require.NoError(t, orcamento.Approve(q))
	assert.Equal(t, entity.StatusApproved, q.Status)
	assert.Equal(t, "CTR-0042", q.ContractNumber, "número de contrato = CTR- + número sem o #")
}

// Reaprovação hipotética não sobrescreve número já atribuído.
func TestApprove_NaoSobrescreveNumeroExistente(t *testing.T) {
	q := &entity.Quote{Status: entity.StatusSent, Number: "#0099", ContractNumber: "CTR-0042"}

	require.NoError(t, orcamento.Approve(q))
	assert.Equal(t, "CTR-0042", q.ContractNumber)
}

func TestApprove_ForaDeSentFalha(t *testing.T) {
	for _, status := range []string{entity.StatusDraft, entity.StatusApproved, entity.StatusRejected, entity.StatusCompleted} {
		q := &entity.Quote{Status: status, Number: "#1"}
		err := orcamento.Approve(q)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "status %s", status)
		assert.Equal(t, status, q.Status, "status não deve mudar em transição ilegal")
	}
}

func TestContractNumber_RemoveApenasOPrimeiroCerquilha(t *testing.T) {
	assert.Equal(t, "CTR-0042", orcamento.ContractNumber("#0042"))
	assert.Equal(t, "CTR-0042", orcamento.ContractNumber("0042"))
	assert.Equal(t, "CTR-00#42", orcamento.ContractNumber("#00#42"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reject
// ──────────────────────────────────────────────────────────────────────────────

func TestReject_SomenteDeSent(t *testing.T) {
	q := &entity.Quote{Status: entity.StatusSent}
	require.NoError(t, orcamento.Reject(q))
	assert.Equal(t, entity.StatusRejected, q.Status)

	// REJECTED é terminal: nem aprovar nem rejeitar de novo.
	assert.ErrorIs(t, orcamento.Approve(q), domain.ErrInvalidTransition)
	assert.ErrorIs(t, orcamento.Reject(q), domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Complete
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_EstampaConclusaoEGarantia(t *testing.T) {
	q := &entity.Quote{
		Status:           entity.StatusApproved,
		SignatureData:    "assinatura-cliente",
		WarrantyDuration: 12,
	}

	require.NoError(t, orcamento.Complete(q, "assinatura-tecnico", clock))

	assert.Equal(t, entity.StatusCompleted, q.Status)
	require.NotNil(t, q.CompletionDate)
	assert.Equal(t, clock, *q.CompletionDate)
	require.NotNil(t, q.WarrantyUntil)
	assert.Equal(t, clock.AddDate(0, 12, 0), *q.WarrantyUntil,
		"garantia = conclusão + N meses")
}

func TestComplete_SemAssinaturaDoClienteFalha(t *testing.T) {
	q := &entity.Quote{Status: entity.StatusApproved}
	err := orcamento.Complete(q, "assinatura-tecnico", clock)

	assert.ErrorIs(t, err, domain.ErrSignatureRequired)
	assert.Equal(t, entity.StatusApproved, q.Status)
	assert.Nil(t, q.CompletionDate)
}

func TestComplete_SemAssinaturaDoTecnicoFalha(t *testing.T) {
	q := &entity.Quote{Status: entity.StatusApproved, SignatureData: "assinatura-cliente"}
	err := orcamento.Complete(q, "", clock)

	assert.ErrorIs(t, err, domain.ErrSignatureRequired)
}

func TestComplete_ForaDeApprovedFalha(t *testing.T) {
	q := &entity.Quote{Status: entity.StatusSent, SignatureData: "x"}
	assert.ErrorIs(t, orcamento.Complete(q, "y", clock), domain.ErrInvalidTransition)
}

func TestComplete_GarantiaZeroMeses(t *testing.T) {
	q := &entity.Quote{Status: entity.StatusApproved, SignatureData: "x", WarrantyDuration: 0}
	require.NoError(t, orcamento.Complete(q, "y", clock))
	assert.Equal(t, clock, *q.WarrantyUntil, "garantia zero expira na própria conclusão")
}
