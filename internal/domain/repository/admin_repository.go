package repository

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// AdminRepository define el puerto de persistencia para Admin (DIP).
type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByID(id string) (*entity.Admin, error)
	FindByEmail(email string) (*entity.Admin, error)
}
