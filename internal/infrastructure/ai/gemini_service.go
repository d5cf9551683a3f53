package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gestorpro/orcamentos-api/internal/application/ports"
	"github.com/gestorpro/orcamentos-api/internal/domain"
)

// Verificação em tempo de compilação de que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// GeminiService adaptador que implementa LLMService chamando a API REST do
// Google Gemini. Usa apenas net/http para não adicionar dependências externas.
// A chave vem por chamada: cada usuário pode registrar a própria.
type GeminiService struct {
	model      string
	httpClient *http.Client
}

// NewGeminiService constrói o adaptador. model costuma ser "gemini-2.5-flash".
func NewGeminiService(model string) *GeminiService {
	return &GeminiService{
		model: model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de rede; o caller também põe WithTimeout
		},
	}
}

// ── Estruturas internas da API do Gemini ──────────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText envia o prompt e devolve o texto da primeira resposta.
func (s *GeminiService) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", domain.ErrMissingAPIKey
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.7,  // texto contratual, mas com alguma variação de redação
			MaxOutputTokens: 4096, // contratos completos são longos
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			if isAPIKeyError(resp.StatusCode, errResp.Error.Message) {
				return "", domain.ErrInvalidAPIKey
			}
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		if isAPIKeyError(resp.StatusCode, "") {
			return "", domain.ErrInvalidAPIKey
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar resposta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolveu resposta vazia")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}

// isAPIKeyError identifica rejeições de credencial (chave ausente, inválida ou
// sem permissão) para que o caller informe o usuário em vez de logar um 500.
func isAPIKeyError(status int, message string) bool {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return true
	}
	lower := strings.ToLower(message)
	return status == http.StatusBadRequest && strings.Contains(lower, "api key")
}
