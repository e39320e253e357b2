package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// ExpenseUseCase registro y consulta de gastos operativos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. El monto debe ser positivo.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos con paginación.
func (uc *ExpenseUseCase) List(limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un gasto por ID.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}
