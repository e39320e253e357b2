package entity

import "time"

// Permisos válidos para Role. Cada permiso habilita una pantalla de la aplicación.
const (
	PermCaja      = "caja"
	PermKitchen   = "kitchen"
	PermInventory = "inventory"
	PermReports   = "reports"
	PermAdmin     = "admin"
)

// ValidPermissions enumeración cerrada de permisos aceptados.
var ValidPermissions = []string{PermCaja, PermKitchen, PermInventory, PermReports, PermAdmin}

// Role agrupa permisos de pantalla. El conjunto de permisos determina a qué
// superficies de navegación puede llegar un usuario con ese rol.
type Role struct {
	ID          string
	Name        string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission informa si el rol incluye el permiso indicado.
func (r *Role) HasPermission(perm string) bool {
	if r == nil {
		return false
	}
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// IsValidPermission valida que perm pertenezca a la enumeración cerrada.
func IsValidPermission(perm string) bool {
	for _, p := range ValidPermissions {
		if p == perm {
			return true
		}
	}
	return false
}
