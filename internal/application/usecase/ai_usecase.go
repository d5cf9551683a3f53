package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gestorpro/orcamentos-api/internal/application/access"
	"github.com/gestorpro/orcamentos-api/internal/application/ports"
	"github.com/gestorpro/orcamentos-api/internal/domain"
	"github.com/gestorpro/orcamentos-api/internal/domain/entity"
	"github.com/gestorpro/orcamentos-api/internal/domain/orcamento"
	"github.com/gestorpro/orcamentos-api/internal/domain/repository"
)

// Limite de tamanho dos campos interpolados nos prompts.
const maxPromptInput = 5000

// AIUseCase orquestra a geração assistida de cláusulas e modelos de contrato.
// Toda chamada passa pelo portão de acesso (rate limit + assinatura ativa) e
// recebe um timeout de 10 s para não prender goroutines do servidor.
type AIUseCase struct {
	llm         ports.LLMService
	quotes      repository.QuoteRepository
	creds       repository.CredentialRepository
	gate        *access.Gate
	fallbackKey string // chave do servidor usada quando o usuário não registrou a própria
}

// NewAIUseCase constrói o caso de uso.
func NewAIUseCase(llm ports.LLMService, quotes repository.QuoteRepository, creds repository.CredentialRepository, gate *access.Gate, fallbackKey string) *AIUseCase {
	return &AIUseCase{llm: llm, quotes: quotes, creds: creds, gate: gate, fallbackKey: fallbackKey}
}

// GenerateClauses gera as cláusulas contratuais essenciais para um orçamento.
func (uc *AIUseCase) GenerateClauses(ctx context.Context, userID, quoteID string) (string, error) {
	if err := uc.gate.EnsureAIAccess(userID); err != nil {
		return "", err
	}
	q, err := uc.quotes.GetByID(quoteID, userID)
	if err != nil {
		return "", err
	}
	if q == nil {
		return "", domain.ErrNotFound
	}

	apiKey, err := uc.apiKey(userID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := uc.llm.GenerateText(ctx, apiKey, clausesPrompt(q))
	if err != nil {
		return "", fmt.Errorf("geração de cláusulas: %w", err)
	}
	return text, nil
}

// GenerateTemplate gera um modelo de contrato completo para o tipo de serviço
// dado, usando os placeholders reais do motor de contratos.
func (uc *AIUseCase) GenerateTemplate(ctx context.Context, userID, templateName string) (string, error) {
	if templateName == "" {
		return "", domain.ErrInvalidInput
	}
	if err := uc.gate.EnsureAIAccess(userID); err != nil {
		return "", err
	}

	apiKey, err := uc.apiKey(userID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := uc.llm.GenerateText(ctx, apiKey, templatePrompt(sanitize(templateName)))
	if err != nil {
		return "", fmt.Errorf("geração de modelo: %w", err)
	}
	return text, nil
}

// SaveAPIKey registra a chave Gemini do próprio usuário.
func (uc *AIUseCase) SaveAPIKey(userID, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return uc.creds.SaveAPIKey(userID, key)
}

func (uc *AIUseCase) apiKey(userID string) (string, error) {
	key, err := uc.creds.GetAPIKey(userID)
	if err != nil {
		return "", err
	}
	if key == "" {
		key = uc.fallbackKey
	}
	if key == "" {
		return "", domain.ErrMissingAPIKey
	}
	return key, nil
}

// sanitize remove potenciais tags HTML e limita o tamanho da entrada
// interpolada no prompt.
func sanitize(input string) string {
	cleaned := strings.NewReplacer("<", "", ">", "").Replace(input)
	cleaned = strings.TrimSpace(cleaned)
	runes := []rune(cleaned)
	if len(runes) > maxPromptInput {
		return string(runes[:maxPromptInput])
	}
	return cleaned
}

func clausesPrompt(q *entity.Quote) string {
	services := make([]string, 0, len(q.Services))
	for _, s := range q.Services {
		services = append(services, fmt.Sprintf("%s: %s (R$ %s)", sanitize(s.Name), sanitize(s.Description), s.Price.StringFixed(2)))
	}
	materials := make([]string, 0, len(q.Materials))
	for _, m := range q.Materials {
		materials = append(materials, fmt.Sprintf("%dx %s", m.Quantity, sanitize(m.Name)))
	}
	materialsText := strings.Join(materials, ", ")
	if materialsText == "" {
		materialsText = "Nenhum material listado"
	}

	return fmt.Sprintf(`Você é um assistente jurídico especializado em contratos de prestação de serviços no Brasil.
Gere as cláusulas contratuais essenciais para o seguinte serviço:

Cliente: %s
Serviços: %s
Materiais: %s
Valor Total: R$ %s
Prazo de Garantia: %d meses
Forma de Pagamento: %s

Gere APENAS o texto das cláusulas, numeradas, cobrindo:
1. Objeto do contrato (detalhando os serviços)
2. Obrigações do contratado
3. Obrigações do contratante
4. Valores e forma de pagamento
5. Prazos e garantia
6. Rescisão
7. Foro

Use linguagem formal mas clara. Não inclua cabeçalho ou rodapé, testemunhas, apenas as cláusulas.`,
		sanitize(q.Client.Name),
		strings.Join(services, ", "),
		materialsText,
		orcamento.Total(q.Services, q.Materials).StringFixed(2),
		q.WarrantyDuration,
		sanitize(q.PaymentTerms),
	)
}

func templatePrompt(name string) string {
	return fmt.Sprintf(`Você é um especialista jurídico. Crie um modelo de contrato de prestação de serviços para: %s.

Use OBRIGATORIAMENTE os seguintes placeholders para os dados variáveis:
{{CLIENTE_NOME}} - Nome do cliente
{{CLIENTE_DOC}} - CPF/CNPJ do cliente
{{CLIENTE_ENDERECO}} - Endereço do cliente
{{CONTRATADO_NOME}} - Nome do profissional
{{CONTRATADO_EMPRESA}} - Nome da empresa do profissional
{{CONTRATADO_DOC}} - CPF/CNPJ do profissional
{{LISTA_SERVICOS}} - Lista detalhada dos serviços e valores
{{LISTA_MATERIAIS}} - Lista de materiais
{{VALOR_TOTAL}} - Valor total do orçamento
{{FORMA_PAGAMENTO}} - Condições de pagamento
{{GARANTIA_MESES}} - Tempo de garantia em meses
{{DATA_HOJE}} - Data de hoje

Estrutura:
1. Identificação das partes (usando os placeholders)
2. Objeto (usando {{LISTA_SERVICOS}})
3. Materiais (usando {{LISTA_MATERIAIS}})
4. Preço e Pagamento (usando {{VALOR_TOTAL}} e {{FORMA_PAGAMENTO}})
5. Obrigações
6. Garantia (usando {{GARANTIA_MESES}})
7. Foro

Gere APENAS o texto do contrato. Sem explicações extras.`, name)
}
