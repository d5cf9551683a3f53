// Package pdf implementa a geração dos documentos imprimíveis de um orçamento.
//
// Layout da página A4 (proposta):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CPF/CNPJ  │  N° Orçamento + Data         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISSOR: Endereço / Tel / Email                            │
//	│  CLIENTE: Nome + CPF/CNPJ + contato                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERVIÇOS: Descrição | Valor                                │
//	│  MATERIAIS: Qtd | Item | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Serviços / Materiais / TOTAL                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: condições de pagamento + garantia + validade       │
//	└─────────────────────────────────────────────────────────────┘
//
// O contrato e o certificado de garantia reutilizam o mesmo cabeçalho com o
// corpo em texto corrido.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/orcamentos-api/internal/application/usecase"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/orcamento"
)

var _ usecase.QuotePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 95, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF gera a proposta comercial e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, q *entity.Quote, company *entity.CompanyInfo) ([]byte, error) {
	m := newDocument("Orçamento", company)

	m.AddRows(headerRow("ORÇAMENTO", q.Number, q.Date.Format("02/01/2006"), company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emissorRow(company))
	m.AddRows(clienteRow(&q.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(q.Services) > 0 {
		m.AddRows(sectionTitleRow("SERVIÇOS"))
		for _, r := range serviceRows(q.Services) {
			m.AddRows(r)
		}
	}
	if len(q.Materials) > 0 {
		m.AddRows(sectionTitleRow("MATERIAIS"))
		m.AddRows(materialHeaderRow())
		for _, r := range materialRows(q.Materials) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(q))

	m.AddRows(line.NewRow(2))
	for _, r := range quoteFooterRows(q) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar orçamento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateContractPDF gera o contrato de prestação de serviços.
func (g *MarotoPDFGenerator) GenerateContractPDF(_ context.Context, q *entity.Quote, company *entity.CompanyInfo) ([]byte, error) {
	m := newDocument("Contrato de Prestação de Serviços", company)

	numero := q.ContractNumber
	if numero == "" {
		numero = q.Number
	}
	m.AddRows(headerRow("CONTRATO DE PRESTAÇÃO DE SERVIÇOS", numero, q.Date.Format("02/01/2006"), company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(line.NewRow(2))

	for _, r := range bodyTextRows(q.ContractTerms) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow(company.Name, q.Client.Name))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateWarrantyPDF gera o certificado de garantia (orçamento concluído).
func (g *MarotoPDFGenerator) GenerateWarrantyPDF(_ context.Context, q *entity.Quote, company *entity.CompanyInfo) ([]byte, error) {
	m := newDocument("Certificado de Garantia", company)

	m.AddRows(headerRow("CERTIFICADO DE GARANTIA", q.Number, q.Date.Format("02/01/2006"), company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(line.NewRow(3))

	conclusao := ""
	if q.CompletionDate != nil {
		conclusao = q.CompletionDate.Format("02/01/2006")
	}
	validade := ""
	if q.WarrantyUntil != nil {
		validade = q.WarrantyUntil.Format("02/01/2006")
	}

	body := fmt.Sprintf(
		"A empresa %s certifica que os serviços prestados a %s, objeto do orçamento %s, "+
			"foram concluídos em %s e estão cobertos por garantia de %d meses, válida até %s.\n\n"+
			"A garantia cobre defeitos de instalação e de funcionamento dos serviços executados. "+
			"Não cobre danos causados por mau uso, intervenção de terceiros ou eventos da natureza.",
		displayName(company), q.Client.Name, q.Number, conclusao, q.WarrantyDuration, validade,
	)
	for _, r := range bodyTextRows(body) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow(company.Name, q.Client.Name))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar garantia: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func newDocument(title string, company *entity.CompanyInfo) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(displayName(company), true).
		Build()
	return maroto.New(cfg)
}

// headerRow: empresa + documento (esq) e tipo + número + data (dir).
func headerRow(kind, number, date string, company *entity.CompanyInfo) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(displayName(company), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CPF/CNPJ: "+nonEmpty(company.Document, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(kind, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emissorRow: dados do prestador.
func emissorRow(company *entity.CompanyInfo) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DADOS DO PRESTADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Endereço: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clienteRow: dados do cliente.
func clienteRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF/CNPJ: %s   |   Tel: %s   |   Endereço: %s",
				nonEmpty(client.Document, "—"),
				nonEmpty(client.Phone, "—"),
				nonEmpty(client.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// serviceRows: uma linha por serviço, descrição à esquerda e valor à direita.
func serviceRows(services []entity.ServiceItem) []core.Row {
	result := make([]core.Row, 0, len(services))
	for _, s := range services {
		label := s.Name
		if s.Description != "" {
			label += " — " + s.Description
		}
		result = append(result, row.New(7).Add(
			col.New(9).Add(text.New(label, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New("R$ "+formatBRL(s.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func materialHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Qtd.", 1, align.Center),
		h("Item", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// materialRows: uma linha por material.
func materialRows(materials []entity.MaterialItem) []core.Row {
	result := make([]core.Row, 0, len(materials))
	for _, m := range materials {
		label := m.Name
		if m.Brand != "" {
			label += " (" + m.Brand + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", m.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(label, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New("R$ "+formatBRL(m.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New("R$ "+formatBRL(m.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(q *entity.Quote) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Serviços:"),
			label("Materiais:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value("R$ "+formatBRL(orcamento.ServicesTotal(q.Services))),
			value("R$ "+formatBRL(orcamento.MaterialsTotal(q.Materials))),
			grandValue("R$ "+formatBRL(orcamento.Total(q.Services, q.Materials))),
		),
		col.New(1),
	)
}

// quoteFooterRows: condições de pagamento, garantia e validade.
func quoteFooterRows(q *entity.Quote) []core.Row {
	pagamento := q.PaymentTerms
	if pagamento == "" {
		pagamento = "A combinar"
	}
	rows := []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New("Forma de pagamento: "+pagamento, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Garantia: %d meses após a conclusão do serviço.", q.WarrantyDuration),
				props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
	if q.ValidUntil != nil {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Proposta válida até "+q.ValidUntil.Format("02/01/2006")+".",
				props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// bodyTextRows converte texto corrido em linhas do documento. A altura de cada
// linha é estimada pelo comprimento, já que o texto do contrato quebra sozinho.
func bodyTextRows(content string) []core.Row {
	const charsPerLine = 95
	var rows []core.Row
	for _, paragraph := range strings.Split(content, "\n") {
		paragraph = strings.TrimRight(paragraph, " \t")
		if paragraph == "" {
			rows = append(rows, row.New(3))
			continue
		}
		lines := (len([]rune(paragraph)) / charsPerLine) + 1
		rows = append(rows, row.New(float64(4*lines)).Add(col.New(12).Add(
			text.New(paragraph, props.Text{Size: 9, Align: align.Left, Top: 0.5}),
		)))
	}
	return rows
}

// signatureRow: linhas de assinatura do prestador e do cliente.
func signatureRow(companyName, clientName string) core.Row {
	sig := func(name, role string) core.Col {
		return col.New(6).Add(
			text.New("____________________________________", props.Text{
				Size: 9, Align: align.Center, Top: 1, Color: colorGray,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 6}),
			text.New(role, props.Text{Size: 8, Align: align.Center, Top: 11, Color: colorGray}),
		)
	}
	return row.New(18).Add(
		sig(companyName, "CONTRATADO"),
		sig(clientName, "CONTRATANTE"),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func displayName(company *entity.CompanyInfo) string {
	if company.CompanyName != "" {
		return company.CompanyName
	}
	return nonEmpty(company.Name, "—")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatBRL formata um decimal no padrão brasileiro.
// Ex: 1234.56 → "1.234,56"
func formatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + "," + fracPart
	if neg {
		return "-" + out
	}
	return out
}
