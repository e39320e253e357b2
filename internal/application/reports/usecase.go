package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// OrderSource provee los pedidos vivos del proceso. Lo implementa
// *session.Manager; la interfaz evita acoplar reportes al gestor completo.
type OrderSource interface {
	Orders() []entity.Order
}

// ReportUseCase reportes sobre pedidos (vivos e históricos) y gastos.
type ReportUseCase struct {
	liveOrders  OrderSource
	orderRepo   repository.OrderRepository
	expenseRepo repository.ExpenseRepository
	shiftRepo   repository.ShiftRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	liveOrders OrderSource,
	orderRepo repository.OrderRepository,
	expenseRepo repository.ExpenseRepository,
	shiftRepo repository.ShiftRepository,
) *ReportUseCase {
	return &ReportUseCase{
		liveOrders:  liveOrders,
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		shiftRepo:   shiftRepo,
	}
}

// Daily resumen del día en curso sobre los pedidos vivos del proceso más los
// gastos persistidos en la misma ventana.
func (uc *ReportUseCase) Daily(ctx context.Context) (Summary, error) {
	from, to := DayWindow(time.Now())

	expenses, err := uc.expenseRepo.ListByRange(from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("reportes: gastos del día: %w", err)
	}
	exp := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		exp = append(exp, *e)
	}

	return Summarize(uc.liveOrders.Orders(), exp, from, to), nil
}

// Sales resumen histórico de una ventana arbitraria leyendo la tabla de pedidos
// (write-through), no la memoria del proceso.
func (uc *ReportUseCase) Sales(ctx context.Context, from, to time.Time) (Summary, error) {
	if to.Before(from) {
		return Summary{}, fmt.Errorf("reportes: ventana inválida: to < from")
	}

	orders, err := uc.orderRepo.ListByRange(from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("reportes: pedidos en ventana: %w", err)
	}
	expenses, err := uc.expenseRepo.ListByRange(from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("reportes: gastos en ventana: %w", err)
	}

	ords := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		ords = append(ords, *o)
	}
	exp := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		exp = append(exp, *e)
	}

	return Summarize(ords, exp, from, to), nil
}

// ShiftDetail turno cerrado con sus pedidos, para el cierre de caja.
type ShiftDetail struct {
	Shift  entity.Shift
	Orders []entity.Order
}

// Shift carga un turno persistido y sus pedidos para generar el cierre de caja.
func (uc *ReportUseCase) Shift(ctx context.Context, shiftID string) (*ShiftDetail, error) {
	shift, err := uc.shiftRepo.GetByID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("reportes: turno %s: %w", shiftID, err)
	}
	if shift == nil {
		return nil, nil
	}
	orders, err := uc.orderRepo.ListByShift(shiftID)
	if err != nil {
		return nil, fmt.Errorf("reportes: pedidos del turno %s: %w", shiftID, err)
	}
	detail := &ShiftDetail{Shift: *shift}
	for _, o := range orders {
		detail.Orders = append(detail.Orders, *o)
	}
	return detail, nil
}
