package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de preparación de un pedido. Solo avanza hacia adelante
// (ver internal/domain/order para la tabla de transiciones).
type OrderStatus string

const (
	StatusPendiente     OrderStatus = "pendiente"
	StatusEnPreparacion OrderStatus = "en_preparacion"
	StatusListo         OrderStatus = "listo"
	StatusEntregado     OrderStatus = "entregado"
)

// Métodos de pago registrados en el pedido. Son solo una etiqueta: no hay
// integración con pasarelas.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// CartItem es una línea del carrito o del pedido. El ID de línea es compuesto:
// productID para la variante sencilla, productID+"-combo" para el combo, de modo
// que un mismo producto puede aparecer en ambas variantes como líneas separadas.
type CartItem struct {
	ID        string // línea: productID o productID+"-combo"
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ImageURL  string
}

// Subtotal de la línea (cantidad × precio unitario).
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Order representa un pedido confirmado. Es append-only: una vez creado solo
// cambia su estado, nunca se elimina ni se edita.
type Order struct {
	ID            string
	ShiftID       string // vacío si el pedido se tomó sin turno de caja abierto
	Items         []CartItem
	Total         decimal.Decimal
	Status        OrderStatus
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	EstimatedMin  int // estimado de preparación en minutos; 0 = sin estimado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
