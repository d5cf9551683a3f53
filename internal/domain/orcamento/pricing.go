// Package orcamento concentra as regras de negócio do orçamento:
// cálculo de totais e a máquina de estados do ciclo de vida.
package orcamento

import (
	"github.com/shopspring/decimal"

	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
)

// ServicesTotal soma o preço de todos os serviços.
func ServicesTotal(services []entity.ServiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		total = total.Add(s.Price)
	}
	return total
}

// MaterialsTotal soma o TotalPrice de todos os materiais.
// Pressupõe o invariante TotalPrice = Quantity * UnitPrice já mantido
// por MaterialItem.Recalculate nos caminhos de edição.
func MaterialsTotal(materials []entity.MaterialItem) decimal.Decimal {
	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(m.TotalPrice)
	}
	return total
}

// Total devolve o valor total do orçamento (serviços + materiais).
// Deve ser usado em todo ponto que exibe ou persiste total_value,
// para não divergir dos itens.
func Total(services []entity.ServiceItem, materials []entity.MaterialItem) decimal.Decimal {
	return ServicesTotal(services).Add(MaterialsTotal(materials))
}
