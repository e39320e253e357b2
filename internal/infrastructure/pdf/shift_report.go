// Package pdf genera el Cierre de Caja en PDF: el comprobante que el cajero
// imprime al terminar su turno.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Cierre de Caja + fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TURNO: cajero, apertura, cierre                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Método de pago | Pedidos | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: pedidos del turno / TOTAL VENDIDO                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ShiftReportGenerator genera el cierre de caja usando Maroto v2.
type ShiftReportGenerator struct {
	businessName string
}

// NewShiftReportGenerator construye el generador.
func NewShiftReportGenerator(businessName string) *ShiftReportGenerator {
	return &ShiftReportGenerator{businessName: businessName}
}

// Generate genera el PDF del cierre de caja y devuelve sus bytes.
func (g *ShiftReportGenerator) Generate(shift *entity.Shift, orders []entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre de Caja", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(shift))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shiftRow(shift))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range methodRows(orders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(shift))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cierre de caja: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ShiftReportGenerator) headerRow(shift *entity.Shift) core.Row {
	fecha := shift.StartTime.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("CIERRE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// shiftRow: cajero, apertura y cierre del turno.
func shiftRow(shift *entity.Shift) core.Row {
	apertura := shift.StartTime.Format("02/01/2006 15:04")
	cierre := "turno abierto"
	if shift.EndTime != nil {
		cierre = shift.EndTime.Format("02/01/2006 15:04")
	}
	return row.New(14).Add(
		col.New(4).Add(
			text.New("Cajero", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(shift.UserName, props.Text{Size: 9, Top: 5}),
		),
		col.New(4).Add(
			text.New("Apertura", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(apertura, props.Text{Size: 9, Top: 5}),
		),
		col.New(4).Add(
			text.New("Cierre", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(cierre, props.Text{Size: 9, Top: 5}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Método de pago", props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(3).Add(text.New("Pedidos", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
	)
}

// methodRows agrupa los pedidos del turno por método de pago.
func methodRows(orders []entity.Order) []core.Row {
	type agg struct {
		count int
		total decimal.Decimal
	}
	byMethod := map[string]*agg{}
	var methods []string
	for _, o := range orders {
		a, ok := byMethod[o.PaymentMethod]
		if !ok {
			a = &agg{total: decimal.Zero}
			byMethod[o.PaymentMethod] = a
			methods = append(methods, o.PaymentMethod)
		}
		a.count++
		a.total = a.total.Add(o.Total)
	}

	rows := make([]core.Row, 0, len(methods))
	for _, mth := range methods {
		a := byMethod[mth]
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(mth, props.Text{Size: 9})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", a.count), props.Text{Size: 9, Align: align.Right})),
			col.New(3).Add(text.New("$ "+a.total.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func totalsRow(shift *entity.Shift) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New(fmt.Sprintf("Pedidos: %d", shift.OrderCount), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
		),
		col.New(3).Add(
			text.New("TOTAL VENDIDO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray}),
			text.New("$ "+shift.TotalSales.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4, Color: colorPrimary,
			}),
		),
	)
}
