package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// IngredientUseCase CRUD de insumos de cocina con alerta de nivel mínimo.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create crea un insumo. La existencia inicial no puede ser negativa.
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Stock.IsNegative() || in.MinLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ingredient := &entity.Ingredient{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Stock:     in.Stock,
		Unit:      in.Unit,
		MinLevel:  in.MinLevel,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ingredient); err != nil {
		return nil, err
	}
	return toIngredientResponse(ingredient), nil
}

// GetByID obtiene un insumo por ID.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ingredient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, nil
	}
	return toIngredientResponse(ingredient), nil
}

// Update actualiza un insumo (campos opcionales).
func (uc *IngredientUseCase) Update(id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ingredient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, nil
	}
	if in.Name != nil {
		ingredient.Name = *in.Name
	}
	if in.Stock != nil {
		if in.Stock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ingredient.Stock = *in.Stock
	}
	if in.Unit != nil {
		ingredient.Unit = *in.Unit
	}
	if in.MinLevel != nil {
		if in.MinLevel.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ingredient.MinLevel = *in.MinLevel
	}
	ingredient.UpdatedAt = time.Now()
	if err := uc.repo.Update(ingredient); err != nil {
		return nil, err
	}
	return toIngredientResponse(ingredient), nil
}

// List lista insumos con paginación.
func (uc *IngredientUseCase) List(limit, offset int) (*dto.IngredientListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIngredientResponse(i))
	}
	return &dto.IngredientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// LowStock lista insumos en o por debajo del nivel mínimo.
func (uc *IngredientUseCase) LowStock() (*dto.IngredientListResponse, error) {
	list, err := uc.repo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIngredientResponse(i))
	}
	return &dto.IngredientListResponse{Items: items}, nil
}

// Delete elimina un insumo por ID.
func (uc *IngredientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	if i == nil {
		return nil
	}
	return &dto.IngredientResponse{
		ID:           i.ID,
		Name:         i.Name,
		Stock:        i.Stock,
		Unit:         i.Unit,
		MinLevel:     i.MinLevel,
		BelowMinimum: i.BelowMinimum(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
