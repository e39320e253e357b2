package repository

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
