package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift representa un turno de caja: la sesión acotada de trabajo de un empleado.
// Se abre al iniciar sesión un usuario con permiso "caja" y se cierra al salir.
type Shift struct {
	ID         string
	UserID     string
	UserName   string
	StartTime  time.Time
	EndTime    *time.Time // nil mientras el turno está abierto
	TotalSales decimal.Decimal
	OrderCount int
}

// Open informa si el turno sigue abierto.
func (s *Shift) Open() bool {
	return s != nil && s.EndTime == nil
}
