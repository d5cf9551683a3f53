package domain

import "errors"

// Erros de domínio (sem dependências externas).
// Todos são recuperáveis pelo chamador: a camada HTTP os traduz em status codes.
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists   = errors.New("o email já está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrInvalidTransition    = errors.New("transição de status inválida")
	ErrSignatureRequired    = errors.New("assinatura do cliente e do técnico são obrigatórias")
	ErrBadPassword          = errors.New("senha de acesso incorreta")
	ErrSubscriptionRequired = errors.New("assinatura ativa necessária para usar a IA (versão trial não permitida)")
	ErrSubscriptionExpired  = errors.New("sua assinatura expirou")
	ErrRateLimited          = errors.New("muitas requisições; aguarde um minuto")
	ErrMissingAPIKey        = errors.New("chave de API da IA não configurada")
	ErrInvalidAPIKey        = errors.New("chave de API da IA inválida")
)
