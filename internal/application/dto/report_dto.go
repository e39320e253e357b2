package dto

import "github.com/shopspring/decimal"

// ReportSummaryResponse agregado de una ventana de reporte.
// TopProductID vacío significa "sin datos" (ventana sin pedidos).
type ReportSummaryResponse struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	OrderCount    int             `json:"order_count"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
	TopProductID  string          `json:"top_product_id"`
	TopProductQty int             `json:"top_product_qty"`
}
