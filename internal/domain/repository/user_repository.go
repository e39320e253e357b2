package repository

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	CountByRole(roleID string) (int, error)
	Delete(id string) error
}
