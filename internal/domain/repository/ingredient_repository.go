package repository

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	List(limit, offset int) ([]*entity.Ingredient, error)
	ListBelowMinimum() ([]*entity.Ingredient, error)
	Delete(id string) error
}
