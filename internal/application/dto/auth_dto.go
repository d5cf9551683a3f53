package dto

// RegisterRequest entrada de registro de conta.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + dados básicos do usuário.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
}
