package orcamento

import (
	"fmt"
	"strings"
	"time"

	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
)

// Transições legais do ciclo de vida.
// DRAFT existe como estado inicial legal porém não usado: nenhum fluxo cria em
// DRAFT hoje e nenhuma transição nova foi inventada para ele.
//
//	SENT     -> APPROVED (atribui número de contrato)
//	SENT     -> REJECTED (terminal)
//	APPROVED -> COMPLETED (exige assinaturas; estampa conclusão e garantia)
var transitions = map[string][]string{
	entity.StatusDraft:    {},
	entity.StatusSent:     {entity.StatusApproved, entity.StatusRejected},
	entity.StatusApproved: {entity.StatusCompleted},
}

// CanTransition indica se a mudança from -> to é legal.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanEdit indica se o conteúdo comercial (serviços, materiais, condições)
// ainda pode ser alterado. Estados terminais não admitem edição.
func CanEdit(status string) bool {
	return !entity.IsTerminal(status)
}

// Approve move o orçamento de SENT para APPROVED e, se ainda não houver,
// atribui o número de contrato derivado do número de exibição.
func Approve(q *entity.Quote) error {
	if err := guard(q.Status, entity.StatusApproved); err != nil {
		return err
	}
	q.Status = entity.StatusApproved
	if q.ContractNumber == "" {
		q.ContractNumber = ContractNumber(q.Number)
	}
	return nil
}

// Reject move o orçamento de SENT para REJECTED (terminal, sem efeitos colaterais).
func Reject(q *entity.Quote) error {
	if err := guard(q.Status, entity.StatusRejected); err != nil {
		return err
	}
	q.Status = entity.StatusRejected
	return nil
}

// Complete conclui o serviço: exige a assinatura do cliente já coletada no
// orçamento e a assinatura do técnico vinda do perfil do emissor. Estampa a
// data de conclusão e calcula o fim da garantia (conclusão + N meses).
func Complete(q *entity.Quote, techSignature string, now time.Time) error {
	if err := guard(q.Status, entity.StatusCompleted); err != nil {
		return err
	}
	if q.SignatureData == "" || techSignature == "" {
		return domain.ErrSignatureRequired
	}
	q.Status = entity.StatusCompleted
	completion := now
	q.CompletionDate = &completion
	warranty := completion.AddDate(0, q.WarrantyDuration, 0)
	q.WarrantyUntil = &warranty
	return nil
}

// ContractNumber deriva o número de contrato do número de exibição do
// orçamento: "CTR-" + número sem o prefixo "#".
func ContractNumber(number string) string {
	return "CTR-" + strings.Replace(number, "#", "", 1)
}

func guard(from, to string) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}
