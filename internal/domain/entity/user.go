package entity

import "time"

// User representa un empleado que opera la caja, cocina o inventario.
// El PIN es de 4 dígitos numéricos y se compara en texto plano contra el registro
// almacenado; es una brecha de seguridad heredada del diseño original (sin hash
// ni rate limiting) y está marcada como tal en DESIGN.md.
type User struct {
	ID        string
	Name      string
	PIN       string // 4 dígitos numéricos, texto plano
	RoleID    string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
