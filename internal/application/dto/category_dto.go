package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría del menú.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateCategoryRequest entrada para renombrar una categoría.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
