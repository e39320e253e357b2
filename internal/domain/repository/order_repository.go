package repository

import (
	"time"

	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// La cabecera y las líneas se insertan juntas en una transacción (ver TxRunner
// en infraestructura); el estado se actualiza en sitio, nunca se borra un pedido.
type OrderRepository interface {
	Insert(order *entity.Order) error
	UpdateStatus(id string, status entity.OrderStatus, updatedAt time.Time) error
	GetByID(id string) (*entity.Order, error)
	ListByRange(from, to time.Time) ([]*entity.Order, error)
	ListByShift(shiftID string) ([]*entity.Order, error)
}
