package dto

// GenerateClausesRequest entrada da geração de cláusulas para um orçamento.
type GenerateClausesRequest struct {
	QuoteID string `json:"quote_id"`
}

// GenerateTemplateRequest entrada da geração de um modelo de contrato.
type GenerateTemplateRequest struct {
	TemplateName string `json:"template_name"`
}

// AITextResponse texto gerado pela IA.
type AITextResponse struct {
	Text string `json:"text"`
}

// SaveAPIKeyRequest registra a chave Gemini do próprio usuário.
type SaveAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}
