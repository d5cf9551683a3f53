package ports

import "context"

// LLMService porto do oráculo de geração de texto (Gemini hoje).
// O adaptador deve traduzir falhas de credencial para os sentinelas
// domain.ErrMissingAPIKey / domain.ErrInvalidAPIKey.
type LLMService interface {
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
}
