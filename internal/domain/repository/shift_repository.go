package repository

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// ShiftRepository define el puerto de persistencia para Shift.
// El turno vivo pertenece al gestor de sesión en memoria; aquí solo se escribe
// la apertura y el cierre (write-through) y se lee el histórico para reportes.
type ShiftRepository interface {
	Insert(shift *entity.Shift) error
	Close(shift *entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	List(limit, offset int) ([]*entity.Shift, error)
}
