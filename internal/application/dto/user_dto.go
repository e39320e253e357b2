package dto

import "time"

// CreateUserRequest entrada para crear un empleado. El PIN debe ser de 4
// dígitos numéricos; se almacena en texto plano (limitación heredada).
type CreateUserRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	PIN    string `json:"pin" validate:"required,len=4,numeric"`
	RoleID string `json:"role_id" validate:"required,uuid"`
}

// UpdateUserRequest entrada para actualizar un empleado (campos opcionales).
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	PIN    *string `json:"pin" validate:"omitempty,len=4,numeric"`
	RoleID *string `json:"role_id" validate:"omitempty,uuid"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UserResponse salida de un empleado (sin PIN).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RoleID    string    `json:"role_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de empleados.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
