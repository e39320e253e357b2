package dto

import "time"

// LoginRequest entrada para login del panel de administración.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminResponse salida de una identidad de administración (sin password).
type AdminResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
