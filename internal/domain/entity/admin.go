package entity

import "time"

// Admin identidad del proveedor de autenticación (correo + contraseña con bcrypt).
// Su presencia en sesión otorga acceso total a todas las pantallas.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
