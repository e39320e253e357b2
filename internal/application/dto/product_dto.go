package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del menú.
// ComboPrice es opcional: nil significa que el producto no ofrece combo.
type CreateProductRequest struct {
	CategoryID string           `json:"category_id" validate:"required,uuid"`
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	Price      decimal.Decimal  `json:"price"`
	ComboPrice *decimal.Decimal `json:"combo_price"`
	ImageURL   string           `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	CategoryID *string          `json:"category_id" validate:"omitempty,uuid"`
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price      *decimal.Decimal `json:"price"`
	ComboPrice *decimal.Decimal `json:"combo_price"`
	ImageURL   *string          `json:"image_url"`
	Status     *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string           `json:"id"`
	CategoryID string           `json:"category_id"`
	Name       string           `json:"name"`
	Price      decimal.Decimal  `json:"price"`
	ComboPrice *decimal.Decimal `json:"combo_price,omitempty"`
	ImageURL   string           `json:"image_url"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
