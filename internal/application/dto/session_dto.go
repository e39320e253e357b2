package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartShiftRequest entrada para iniciar sesión de empleado por PIN.
type StartShiftRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	PIN    string `json:"pin" validate:"required,len=4,numeric"`
}

// CurrentUserResponse usuario en sesión con su rol resuelto.
type CurrentUserResponse struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	RoleName    string   `json:"role_name"`
	Permissions []string `json:"permissions"`
}

// ShiftResponse salida de un turno de caja.
type ShiftResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    *time.Time      `json:"end_time,omitempty"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int             `json:"order_count"`
}

// SessionResponse estado de la sesión: usuario en turno y turno abierto (si hay).
type SessionResponse struct {
	CurrentUser *CurrentUserResponse `json:"current_user,omitempty"`
	ActiveShift *ShiftResponse       `json:"active_shift,omitempty"`
}

// AddToCartRequest entrada para agregar una unidad al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Combo     bool   `json:"combo"`
}

// UpdateQuantityRequest entrada para reemplazar la cantidad de una línea.
// Cantidad cero elimina la línea.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// CartItemResponse una línea del carrito o de un pedido.
type CartItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// CartResponse carrito actual con total acumulado.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// ConfirmPaymentRequest entrada del diálogo de pago.
type ConfirmPaymentRequest struct {
	Method        string `json:"method" validate:"required,oneof=efectivo tarjeta transferencia"`
	CustomerName  string `json:"customer_name" validate:"omitempty,max=200"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=30"`
	EstimatedMin  int    `json:"estimated_min" validate:"min=0"`
}

// AdvanceOrderRequest entrada para avanzar el estado de un pedido.
type AdvanceOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=pendiente en_preparacion listo entregado"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string             `json:"id"`
	ShiftID       string             `json:"shift_id,omitempty"`
	Items         []CartItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	EstimatedMin  int                `json:"estimated_min,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// OrderListResponse pedidos del proceso en orden de creación.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}

// NotificationsResponse IDs de pedidos recién listos (una sola vez por pedido).
type NotificationsResponse struct {
	ReadyOrderIDs []string `json:"ready_order_ids"`
}
