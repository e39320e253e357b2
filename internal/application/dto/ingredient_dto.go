package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest entrada para crear un insumo.
type CreateIngredientRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Stock    decimal.Decimal `json:"stock"`
	Unit     string          `json:"unit" validate:"required"`
	MinLevel decimal.Decimal `json:"min_level"`
}

// UpdateIngredientRequest entrada para actualizar un insumo.
type UpdateIngredientRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Stock    *decimal.Decimal `json:"stock"`
	Unit     *string          `json:"unit"`
	MinLevel *decimal.Decimal `json:"min_level"`
}

// IngredientResponse salida de un insumo.
type IngredientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Stock        decimal.Decimal `json:"stock"`
	Unit         string          `json:"unit"`
	MinLevel     decimal.Decimal `json:"min_level"`
	BelowMinimum bool            `json:"below_minimum"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IngredientListResponse lista paginada de insumos.
type IngredientListResponse struct {
	Items []IngredientResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
