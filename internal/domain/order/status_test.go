package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/order"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de pedidos: cada estado admite únicamente a su sucesor
// inmediato. Saltos, retrocesos y auto-transiciones se rechazan sin mutar nada.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_CadenaCompleta(t *testing.T) {
	s := entity.StatusPendiente

	s, err := order.Transition(s, entity.StatusEnPreparacion)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEnPreparacion, s)

	s, err = order.Transition(s, entity.StatusListo)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusListo, s)

	s, err = order.Transition(s, entity.StatusEntregado)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregado, s)
}

func TestTransition_RechazaSaltosYRetrocesos(t *testing.T) {
	cases := []struct {
		name     string
		from, to entity.OrderStatus
	}{
		{"salto pendiente→listo", entity.StatusPendiente, entity.StatusListo},
		{"salto pendiente→entregado", entity.StatusPendiente, entity.StatusEntregado},
		{"salto en_preparacion→entregado", entity.StatusEnPreparacion, entity.StatusEntregado},
		{"retroceso listo→en_preparacion", entity.StatusListo, entity.StatusEnPreparacion},
		{"retroceso en_preparacion→pendiente", entity.StatusEnPreparacion, entity.StatusPendiente},
		{"retroceso entregado→listo", entity.StatusEntregado, entity.StatusListo},
		{"auto-transición pendiente→pendiente", entity.StatusPendiente, entity.StatusPendiente},
		{"terminal entregado→pendiente", entity.StatusEntregado, entity.StatusPendiente},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := order.Transition(tc.from, tc.to)
			require.ErrorIs(t, err, order.ErrTransicionInvalida,
				"la transición %s→%s debe rechazarse", tc.from, tc.to)
			assert.Equal(t, tc.from, got,
				"un rechazo debe devolver el estado original intacto")
		})
	}
}

func TestCanTransition_SoloSucesorInmediato(t *testing.T) {
	assert.True(t, order.CanTransition(entity.StatusPendiente, entity.StatusEnPreparacion))
	assert.True(t, order.CanTransition(entity.StatusEnPreparacion, entity.StatusListo))
	assert.True(t, order.CanTransition(entity.StatusListo, entity.StatusEntregado))

	// entregado es terminal: no admite ningún destino
	for _, to := range []entity.OrderStatus{
		entity.StatusPendiente, entity.StatusEnPreparacion, entity.StatusListo, entity.StatusEntregado,
	} {
		assert.False(t, order.CanTransition(entity.StatusEntregado, to),
			"entregado no debe admitir transición a %s", to)
	}
}

func TestNext_SucesorYTerminal(t *testing.T) {
	next, ok := order.Next(entity.StatusPendiente)
	require.True(t, ok)
	assert.Equal(t, entity.StatusEnPreparacion, next)

	_, ok = order.Next(entity.StatusEntregado)
	assert.False(t, ok, "entregado no tiene sucesor")
}

func TestIsValid(t *testing.T) {
	assert.True(t, order.IsValid(entity.StatusPendiente))
	assert.True(t, order.IsValid(entity.StatusEntregado))
	assert.False(t, order.IsValid(entity.OrderStatus("cancelado")),
		"un estado fuera de la enumeración no es válido")
	assert.False(t, order.IsValid(entity.OrderStatus("")))
}
