package repository

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	Update(role *entity.Role) error
	List() ([]*entity.Role, error)
	Delete(id string) error
}
