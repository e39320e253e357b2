package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías del menú.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	category.Name = in.Name
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Delete elimina una categoría. Precondición local: ningún producto puede
// seguir referenciando la categoría.
func (uc *CategoryUseCase) Delete(id string) error {
	count, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoriaEnUso
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
