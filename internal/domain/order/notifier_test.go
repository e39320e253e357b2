package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/order"
)

func orderWith(id string, status entity.OrderStatus) entity.Order {
	return entity.Order{ID: id, Status: status}
}

// Un pedido que avanza pendiente → en_preparacion → listo → listo → entregado
// se notifica exactamente una vez, en el flanco a listo.
func TestReadyNotifier_NotificaUnaSolaVez(t *testing.T) {
	n := order.NewReadyNotifier()

	assert.Empty(t, n.Observe([]entity.Order{orderWith("o1", entity.StatusPendiente)}))
	assert.Empty(t, n.Observe([]entity.Order{orderWith("o1", entity.StatusEnPreparacion)}))

	fired := n.Observe([]entity.Order{orderWith("o1", entity.StatusListo)})
	assert.Equal(t, []string{"o1"}, fired, "el flanco a listo debe notificar")

	assert.Empty(t, n.Observe([]entity.Order{orderWith("o1", entity.StatusListo)}),
		"seguir observando el pedido en listo no debe volver a notificar")
	assert.Empty(t, n.Observe([]entity.Order{orderWith("o1", entity.StatusEntregado)}))
}

// Un pedido visto por primera vez ya en listo también notifica: el flanco
// ocurrió antes de la primera observación.
func TestReadyNotifier_PrimeraObservacionEnListo(t *testing.T) {
	n := order.NewReadyNotifier()
	fired := n.Observe([]entity.Order{orderWith("o1", entity.StatusListo)})
	assert.Equal(t, []string{"o1"}, fired)

	assert.Empty(t, n.Observe([]entity.Order{orderWith("o1", entity.StatusListo)}))
}

// Varios pedidos se notifican de forma independiente, en el orden observado.
func TestReadyNotifier_VariosPedidos(t *testing.T) {
	n := order.NewReadyNotifier()

	n.Observe([]entity.Order{
		orderWith("a", entity.StatusEnPreparacion),
		orderWith("b", entity.StatusEnPreparacion),
	})

	fired := n.Observe([]entity.Order{
		orderWith("a", entity.StatusListo),
		orderWith("b", entity.StatusEnPreparacion),
	})
	assert.Equal(t, []string{"a"}, fired)

	fired = n.Observe([]entity.Order{
		orderWith("a", entity.StatusListo),
		orderWith("b", entity.StatusListo),
	})
	assert.Equal(t, []string{"b"}, fired,
		"a ya fue notificado; solo b debe dispararse")
}

// Forget descarta el rastro: un pedido olvidado y vuelto a observar en listo
// notifica de nuevo.
func TestReadyNotifier_Forget(t *testing.T) {
	n := order.NewReadyNotifier()

	n.Observe([]entity.Order{orderWith("o1", entity.StatusListo)})
	n.Forget("o1")

	fired := n.Observe([]entity.Order{orderWith("o1", entity.StatusListo)})
	assert.Equal(t, []string{"o1"}, fired)
}
