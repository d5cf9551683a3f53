package contract

// Token identifica um placeholder do modelo de contrato.
// O conjunto é fechado: toda substituição passa pela tabela exaustiva em
// bindings(), de modo que um token novo exige uma entrada explícita aqui —
// nada de chaves soltas espalhadas pelo código.
type Token string

// Gramática dos placeholders: {{UPPER_SNAKE_CASE}}, case-sensitive, substituição
// global. Modelos escritos pelos usuários dependem desta gramática byte a byte.
const (
	// Dados do contratado (emissor)
	TokenContratadoNome     Token = "CONTRATADO_NOME"
	TokenContratadoEmpresa  Token = "CONTRATADO_EMPRESA"
	TokenContratadoDoc      Token = "CONTRATADO_DOC"
	TokenContratadoEmail    Token = "CONTRATADO_EMAIL"
	TokenContratadoEndereco Token = "CONTRATADO_ENDERECO"
	TokenContratadoTelefone Token = "CONTRATADO_TELEFONE"

	// Dados do cliente
	TokenClienteNome     Token = "CLIENTE_NOME"
	TokenClienteEndereco Token = "CLIENTE_ENDERECO"
	TokenClienteDoc      Token = "CLIENTE_DOC"
	TokenClienteTelefone Token = "CLIENTE_TELEFONE"

	// Metadados do orçamento
	TokenNumeroOrcamento Token = "NUMERO_ORCAMENTO"
	TokenDataHoje        Token = "DATA_HOJE"
	TokenGarantiaMeses   Token = "GARANTIA_MESES"

	// Itens e valores
	TokenListaServicos  Token = "LISTA_SERVICOS"
	TokenListaMateriais Token = "LISTA_MATERIAIS"
	TokenFormaPagamento Token = "FORMA_PAGAMENTO"
	TokenValorTotal     Token = "VALOR_TOTAL"
)

// Placeholder devolve a forma textual do token como aparece nos modelos.
func (t Token) Placeholder() string {
	return "{{" + string(t) + "}}"
}

// Fallbacks exibidos quando o dado correspondente está ausente.
// Tokens sem fallback documentado substituem por string vazia, nunca ficam no texto.
const (
	fallbackEnderecoContratado = "Endereço não informado"
	fallbackTelefone           = "Telefone não informado"
	fallbackDocumento          = "CPF/CNPJ não informado"
	fallbackSemServicos        = "Nenhum serviço listado."
	fallbackSemMateriais       = "Nenhum material listado."
	fallbackPagamento          = "A combinar"
)

// VariablesHelp lista as variáveis disponíveis, exibida na tela de edição de modelos.
const VariablesHelp = `Variáveis disponíveis:
- {{CONTRATADO_NOME}}, {{CONTRATADO_EMPRESA}}, {{CONTRATADO_DOC}}, {{CONTRATADO_ENDERECO}}, {{CONTRATADO_TELEFONE}}
- {{CLIENTE_NOME}}, {{CLIENTE_ENDERECO}}, {{CLIENTE_DOC}}, {{CLIENTE_TELEFONE}}
- {{NUMERO_ORCAMENTO}}, {{DATA_HOJE}}, {{GARANTIA_MESES}}, {{VALOR_TOTAL}}, {{FORMA_PAGAMENTO}}
- {{LISTA_SERVICOS}}, {{LISTA_MATERIAIS}}
`
