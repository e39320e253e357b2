package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del menú.
// ComboPrice es el precio de la variante combo (con acompañamiento y bebida);
// nil si el producto no ofrece combo.
type Product struct {
	ID         string
	CategoryID string
	Name       string
	Price      decimal.Decimal
	ComboPrice *decimal.Decimal
	ImageURL   string
	Status     string // active, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UnitPrice devuelve el precio de la variante pedida: combo si se solicita y existe,
// si no el precio base.
func (p *Product) UnitPrice(combo bool) decimal.Decimal {
	if combo && p.ComboPrice != nil {
		return *p.ComboPrice
	}
	return p.Price
}
