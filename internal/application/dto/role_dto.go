package dto

import "time"

// CreateRoleRequest entrada para crear un rol. Los permisos deben pertenecer a
// la enumeración cerrada: caja, kitchen, inventory, reports, admin.
type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Permissions []string `json:"permissions" validate:"required,min=1"`
}

// UpdateRoleRequest entrada para actualizar un rol.
type UpdateRoleRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Permissions []string `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleListResponse lista de roles (sin paginar: son pocos).
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
}
