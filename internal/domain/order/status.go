// Package order contiene la máquina de estados de los pedidos y el
// notificador de pedidos listos. Sin dependencias de infraestructura.
package order

import (
	"fmt"

	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// transitions es la tabla explícita de transiciones permitidas:
// cada estado admite únicamente a su sucesor inmediato. No hay saltos
// ni retrocesos; entregado es terminal.
var transitions = map[entity.OrderStatus]entity.OrderStatus{
	entity.StatusPendiente:     entity.StatusEnPreparacion,
	entity.StatusEnPreparacion: entity.StatusListo,
	entity.StatusListo:         entity.StatusEntregado,
}

// ErrTransicionInvalida se envuelve con el par origen→destino rechazado.
var ErrTransicionInvalida = fmt.Errorf("transición de estado inválida")

// IsValid informa si s pertenece a la enumeración de estados.
func IsValid(s entity.OrderStatus) bool {
	switch s {
	case entity.StatusPendiente, entity.StatusEnPreparacion, entity.StatusListo, entity.StatusEntregado:
		return true
	}
	return false
}

// CanTransition informa si from→to está en la tabla.
func CanTransition(from, to entity.OrderStatus) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// Transition valida y devuelve el nuevo estado. Si la transición no está en la
// tabla devuelve el estado original y un error que envuelve ErrTransicionInvalida;
// el llamador no debe mutar nada en ese caso.
func Transition(from, to entity.OrderStatus) (entity.OrderStatus, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s → %s", ErrTransicionInvalida, from, to)
	}
	return to, nil
}

// Next devuelve el sucesor de un estado y false si es terminal.
func Next(from entity.OrderStatus) (entity.OrderStatus, bool) {
	next, ok := transitions[from]
	return next, ok
}
