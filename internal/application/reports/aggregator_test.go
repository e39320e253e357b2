package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/caja-rapida/internal/application/reports"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func orderAt(ts time.Time, total string, items ...entity.CartItem) entity.Order {
	return entity.Order{
		ID:        "o-" + ts.Format("150405"),
		Total:     dec(total),
		Items:     items,
		Status:    entity.StatusPendiente,
		CreatedAt: ts,
	}
}

func item(productID string, qty int) entity.CartItem {
	return entity.CartItem{ID: productID, ProductID: productID, Quantity: qty}
}

func TestSummarize_VentanaDelDia(t *testing.T) {
	ref := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	from, to := reports.DayWindow(ref)

	orders := []entity.Order{
		orderAt(ref.Add(-2*time.Hour), "17.98", item("p-burger", 2)),
		orderAt(ref.Add(1*time.Hour), "6.00", item("p-soda", 3)),
		// fuera de ventana: día anterior
		orderAt(ref.Add(-26*time.Hour), "99.99", item("p-burger", 10)),
	}
	expenses := []entity.Expense{
		{ID: "e1", Amount: dec("4.50"), CreatedAt: ref},
		{ID: "e2", Amount: dec("100.00"), CreatedAt: ref.Add(-30 * time.Hour)},
	}

	s := reports.Summarize(orders, expenses, from, to)

	assert.True(t, s.TotalSales.Equal(dec("23.98")), "ventas del día: 17.98 + 6.00")
	assert.Equal(t, 2, s.OrderCount)
	assert.True(t, s.TotalExpenses.Equal(dec("4.50")), "solo el gasto del día cuenta")
	assert.Equal(t, "p-soda", s.TopProductID, "3 gaseosas superan 2 hamburguesas")
	assert.Equal(t, 3, s.TopProductQty)
}

func TestSummarize_BordesInclusivos(t *testing.T) {
	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)

	orders := []entity.Order{
		orderAt(from, "1.00", item("a", 1)),
		orderAt(to, "2.00", item("a", 1)),
		orderAt(from.Add(-time.Nanosecond), "4.00", item("a", 1)),
		orderAt(to.Add(time.Nanosecond), "8.00", item("a", 1)),
	}

	s := reports.Summarize(orders, nil, from, to)

	assert.True(t, s.TotalSales.Equal(dec("3.00")),
		"los bordes exactos cuentan; fuera por un nanosegundo no")
	assert.Equal(t, 2, s.OrderCount)
}

func TestSummarize_EmpateResueltoPorIDMasBajo(t *testing.T) {
	ref := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	from, to := reports.DayWindow(ref)

	orders := []entity.Order{
		orderAt(ref, "10.00", item("p-zeta", 2)),
		orderAt(ref.Add(time.Minute), "10.00", item("p-alfa", 2)),
	}

	s := reports.Summarize(orders, nil, from, to)

	assert.Equal(t, "p-alfa", s.TopProductID,
		"a cantidades iguales gana el ID de producto más bajo")
	assert.Equal(t, 2, s.TopProductQty)
}

func TestSummarize_VentanaVacia(t *testing.T) {
	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	s := reports.Summarize(nil, nil, from, to)

	assert.True(t, s.TotalSales.IsZero())
	assert.Equal(t, 0, s.OrderCount)
	assert.True(t, s.TotalExpenses.IsZero())
	assert.Equal(t, reports.TopProductNone, s.TopProductID, "sin pedidos no hay producto top")
	assert.Equal(t, 0, s.TopProductQty)
}

// Los gastos se agregan aunque no haya ningún pedido en la ventana.
func TestSummarize_GastosSinPedidos(t *testing.T) {
	ref := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	from, to := reports.DayWindow(ref)

	expenses := []entity.Expense{
		{ID: "e1", Amount: dec("12.00"), CreatedAt: ref},
		{ID: "e2", Amount: dec("3.25"), CreatedAt: ref.Add(time.Hour)},
	}

	s := reports.Summarize(nil, expenses, from, to)

	assert.True(t, s.TotalExpenses.Equal(dec("15.25")))
	assert.Equal(t, 0, s.OrderCount)
}

func TestDayWindow_CubreElDiaCompleto(t *testing.T) {
	ref := time.Date(2026, 3, 14, 17, 42, 9, 123, time.UTC)
	from, to := reports.DayWindow(ref)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), from)
	assert.True(t, to.Before(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
		"la ventana termina antes de la medianoche siguiente")
	assert.True(t, to.After(time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)))
}
