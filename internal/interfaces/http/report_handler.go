package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/reports"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// ShiftPDFGenerator genera el cierre de caja en PDF. Lo implementa
// *pdf.ShiftReportGenerator.
type ShiftPDFGenerator interface {
	Generate(shift *entity.Shift, orders []entity.Order) ([]byte, error)
}

// ReportHandler maneja las peticiones HTTP de reportes (protegido por permiso "reports").
type ReportHandler struct {
	uc  *reports.ReportUseCase
	pdf ShiftPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, pdf ShiftPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Daily godoc
// @Summary      Resumen del día en curso (pedidos vivos + gastos persistidos)
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ReportSummaryResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	summary, err := h.uc.Daily(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toSummaryResponse(summary))
}

// Sales godoc
// @Summary      Resumen histórico de una ventana arbitraria
// @Tags         reports
// @Produce      json
// @Param        from  query  string  true  "Inicio de la ventana (RFC 3339)"
// @Param        to    query  string  true  "Fin de la ventana (RFC 3339)"
// @Success      200   {object}  dto.ReportSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, se espera RFC 3339"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, se espera RFC 3339"})
	}
	if to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la ventana está invertida: to < from"})
	}
	summary, err := h.uc.Sales(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toSummaryResponse(summary))
}

// ShiftPDF godoc
// @Summary      Cierre de caja de un turno en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del turno"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/shifts/{id}/pdf [get]
func (h *ReportHandler) ShiftPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	detail, err := h.uc.Shift(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if detail == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "turno no encontrado"})
	}
	bytes, err := h.pdf.Generate(&detail.Shift, detail.Orders)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cierre-`+id+`.pdf"`)
	return c.Send(bytes)
}

func toSummaryResponse(s reports.Summary) dto.ReportSummaryResponse {
	return dto.ReportSummaryResponse{
		TotalSales:    s.TotalSales,
		OrderCount:    s.OrderCount,
		TotalExpenses: s.TotalExpenses,
		NetIncome:     s.TotalSales.Sub(s.TotalExpenses),
		TopProductID:  s.TopProductID,
		TopProductQty: s.TopProductQty,
	}
}
