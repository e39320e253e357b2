// Package reports contiene los casos de uso de reportes de negocio:
// la agregación pura sobre pedidos/gastos y los reportes diarios e históricos.
package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// TopProductNone centinela para "sin datos": ventana sin pedidos.
const TopProductNone = ""

// Summary agregado de una ventana [from, to] con bordes inclusivos.
type Summary struct {
	TotalSales    decimal.Decimal
	OrderCount    int
	TotalExpenses decimal.Decimal
	TopProductID  string
	TopProductQty int
}

// Summarize deriva el agregado de la ventana. Es una función pura: no toca
// repositorios ni estado compartido.
//
//   - TotalSales: suma de order.Total con CreatedAt dentro de la ventana.
//   - OrderCount: cardinalidad del conjunto filtrado.
//   - TotalExpenses: suma de gastos en la ventana, independiente de que haya pedidos.
//   - TopProductID: producto con mayor cantidad sumada entre las líneas de los
//     pedidos filtrados; empates se resuelven por el ID de producto más bajo
//     (orden lexicográfico) para que el resultado sea determinista.
func Summarize(orders []entity.Order, expenses []entity.Expense, from, to time.Time) Summary {
	s := Summary{
		TotalSales:    decimal.Zero,
		TotalExpenses: decimal.Zero,
		TopProductID:  TopProductNone,
	}

	qtyByProduct := make(map[string]int)
	for _, o := range orders {
		if !inWindow(o.CreatedAt, from, to) {
			continue
		}
		s.TotalSales = s.TotalSales.Add(o.Total)
		s.OrderCount++
		for _, it := range o.Items {
			qtyByProduct[it.ProductID] += it.Quantity
		}
	}

	for id, qty := range qtyByProduct {
		if qty > s.TopProductQty || (qty == s.TopProductQty && s.TopProductID != TopProductNone && id < s.TopProductID) {
			s.TopProductID = id
			s.TopProductQty = qty
		}
	}

	for _, e := range expenses {
		if !inWindow(e.CreatedAt, from, to) {
			continue
		}
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}

	return s
}

// inWindow bordes inclusivos: from <= ts <= to.
func inWindow(ts, from, to time.Time) bool {
	return !ts.Before(from) && !ts.After(to)
}

// DayWindow devuelve la ventana del día de ref: 00:00:00.000 a 23:59:59.999...
func DayWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
