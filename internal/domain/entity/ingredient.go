package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un insumo de cocina con su existencia actual.
type Ingredient struct {
	ID        string
	Name      string
	Stock     decimal.Decimal
	Unit      string          // kg, lt, und
	MinLevel  decimal.Decimal // nivel mínimo antes de alertar reposición
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelowMinimum informa si la existencia está en o por debajo del nivel mínimo.
func (i *Ingredient) BelowMinimum() bool {
	return i.Stock.LessThanOrEqual(i.MinLevel)
}
