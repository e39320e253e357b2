package order

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// ReadyNotifier detecta pedidos que acaban de pasar a "listo".
//
// La notificación es por flanco, no por nivel: se dispara exactamente una vez
// por pedido la primera vez que su estado observado pasa de cualquier estado
// distinto de listo a listo. Observar el mismo pedido de nuevo en listo no
// vuelve a disparar; para eso se guarda el último estado visto por ID.
type ReadyNotifier struct {
	lastSeen map[string]entity.OrderStatus
	notified map[string]bool
}

// NewReadyNotifier construye el notificador.
func NewReadyNotifier() *ReadyNotifier {
	return &ReadyNotifier{
		lastSeen: make(map[string]entity.OrderStatus),
		notified: make(map[string]bool),
	}
}

// Observe registra el estado actual de los pedidos y devuelve los IDs que deben
// notificarse en esta observación (pasaron a listo y aún no fueron notificados).
func (n *ReadyNotifier) Observe(orders []entity.Order) []string {
	var fire []string
	for _, o := range orders {
		prev, seen := n.lastSeen[o.ID]
		n.lastSeen[o.ID] = o.Status

		if o.Status != entity.StatusListo {
			continue
		}
		if n.notified[o.ID] {
			continue
		}
		// Un pedido visto por primera vez ya en listo también notifica:
		// nunca se observó en otro estado, así que el flanco no se perdió.
		if seen && prev == entity.StatusListo {
			continue
		}
		n.notified[o.ID] = true
		fire = append(fire, o.ID)
	}
	return fire
}

// Forget descarta el rastro de un pedido (por ejemplo al cerrar el día).
func (n *ReadyNotifier) Forget(orderID string) {
	delete(n.lastSeen, orderID)
	delete(n.notified, orderID)
}
