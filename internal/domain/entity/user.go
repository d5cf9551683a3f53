package entity

import "time"

// User é a conta de autenticação do prestador. O perfil (UserProfile)
// compartilha o mesmo ID e guarda os dados de empresa e assinatura.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
