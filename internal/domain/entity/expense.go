package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo registrado durante el día.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
