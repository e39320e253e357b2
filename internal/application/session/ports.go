package session

import (
	"context"

	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de pedidos atado a esa tx. Garantiza que cabecera y líneas del
// pedido se inserten de forma atómica al confirmar el pago.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
