package repository

import (
	"time"

	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(limit, offset int) ([]*entity.Expense, error)
	ListByRange(from, to time.Time) ([]*entity.Expense, error)
	Delete(id string) error
}
