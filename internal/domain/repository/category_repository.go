package repository

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
