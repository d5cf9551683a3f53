package dto

// PublicAccessResponse resultado da checagem de acesso por token público.
type PublicAccessResponse struct {
	Exists           bool `json:"exists"`
	RequiresPassword bool `json:"requires_password"`
}

// PublicResolveRequest senha opcional para liberar um orçamento protegido.
type PublicResolveRequest struct {
	Password string `json:"password"`
}
