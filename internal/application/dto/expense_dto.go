package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=300"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseListResponse lista paginada de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
