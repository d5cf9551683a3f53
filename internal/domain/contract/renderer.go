// Package contract implementa o motor de geração de texto de contratos:
// substituição de placeholders {{TOKEN}} sobre um modelo editável pelo usuário,
// mesclando dados do orçamento, do cliente e do emissor.
//
// O Render é puro, determinístico e total: nunca retorna erro e nenhum token
// conhecido sobrevive no texto final — dados ausentes viram fallback descritivo.
// Tokens fora do conjunto conhecido ficam intactos de propósito, para que um
// placeholder digitado errado seja visível no documento em vez de sumir em silêncio.
package contract

import (
	"strconv"
	"strings"
	"time"

	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/orcamento"
)

// Render mescla o modelo com os dados do orçamento e do emissor.
// now é injetado porque {{DATA_HOJE}} usa a data de geração (não a de emissão
// do orçamento — comportamento herdado do produto, preservado deliberadamente).
func Render(template string, q *entity.Quote, company *entity.CompanyInfo, now time.Time) string {
	text := template
	for _, b := range bindings(q, company, now) {
		text = strings.ReplaceAll(text, b.token.Placeholder(), b.value)
	}
	return text
}

type binding struct {
	token Token
	value string
}

// bindings monta a tabela exaustiva token -> valor para um orçamento.
// Toda constante Token declarada em tokens.go deve ter exatamente uma entrada aqui.
func bindings(q *entity.Quote, company *entity.CompanyInfo, now time.Time) []binding {
	if company == nil {
		company = &entity.CompanyInfo{}
	}

	companyName := company.CompanyName
	if companyName == "" {
		companyName = company.Name
	}

	return []binding{
		{TokenContratadoNome, company.Name},
		{TokenContratadoEmpresa, companyName},
		{TokenContratadoDoc, company.Document},
		{TokenContratadoEmail, company.Email},
		{TokenContratadoEndereco, orFallback(company.Address, fallbackEnderecoContratado)},
		{TokenContratadoTelefone, orFallback(company.Phone, fallbackTelefone)},

		{TokenClienteNome, q.Client.Name},
		{TokenClienteEndereco, q.Client.Address},
		{TokenClienteDoc, orFallback(q.Client.Document, fallbackDocumento)},
		{TokenClienteTelefone, orFallback(q.Client.Phone, fallbackTelefone)},

		{TokenNumeroOrcamento, q.Number},
		{TokenDataHoje, now.Format("02/01/2006")},
		{TokenGarantiaMeses, strconv.Itoa(q.WarrantyDuration)},

		{TokenListaServicos, servicesList(q.Services)},
		{TokenListaMateriais, materialsList(q.Materials)},
		{TokenFormaPagamento, paymentInfo(q.PaymentTerms, company)},
		{TokenValorTotal, "R$ " + orcamento.Total(q.Services, q.Materials).StringFixed(2)},
	}
}

// servicesList formata uma linha por serviço: "- Nome: R$ 123.45".
func servicesList(services []entity.ServiceItem) string {
	if len(services) == 0 {
		return fallbackSemServicos
	}
	lines := make([]string, 0, len(services))
	for _, s := range services {
		lines = append(lines, "- "+s.Name+": R$ "+s.Price.StringFixed(2))
	}
	return strings.Join(lines, "\n")
}

// materialsList formata uma linha por material: "- 2x Cabo (Marca): R$ 100.00".
func materialsList(materials []entity.MaterialItem) string {
	if len(materials) == 0 {
		return fallbackSemMateriais
	}
	lines := make([]string, 0, len(materials))
	for _, m := range materials {
		lines = append(lines, "- "+strconv.Itoa(m.Quantity)+"x "+m.Name+" ("+m.Brand+"): R$ "+m.TotalPrice.StringFixed(2))
	}
	return strings.Join(lines, "\n")
}

// paymentInfo devolve as condições de pagamento e, se o texto citar pix,
// transferência ou depósito e o emissor tiver dados bancários cadastrados,
// anexa o bloco "DADOS PARA PAGAMENTO".
func paymentInfo(terms string, company *entity.CompanyInfo) string {
	info := terms
	if info == "" {
		info = fallbackPagamento
	}

	lower := strings.ToLower(info)
	mentionsTransfer := strings.Contains(lower, "pix") ||
		strings.Contains(lower, "transfer") ||
		strings.Contains(lower, "depósito")

	if mentionsTransfer && (company.PixKey != "" || company.BankInfo != "") {
		info += "\n\nDADOS PARA PAGAMENTO:"
		if company.PixKey != "" {
			info += "\nPIX: " + company.PixKey
		}
		if company.BankInfo != "" {
			info += "\n" + company.BankInfo
		}
	}
	return info
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
