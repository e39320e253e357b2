package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// ProductUseCase CRUD de productos del menú.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. Price y ComboPrice (si existe) no pueden ser negativos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ComboPrice != nil && in.ComboPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Price:      in.Price,
		ComboPrice: in.ComboPrice,
		ImageURL:   in.ImageURL,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (campos opcionales).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ComboPrice != nil {
		if in.ComboPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.ComboPrice = in.ComboPrice
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Price:      p.Price,
		ComboPrice: p.ComboPrice,
		ImageURL:   p.ImageURL,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
