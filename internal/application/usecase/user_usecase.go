package usecase

import (
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// UserUseCase CRUD de empleados.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo}
}

// validPIN un PIN válido tiene exactamente 4 dígitos numéricos.
func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Create crea un empleado. El rol debe existir (precondición local, ver ErrRolNoEncontrado).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !validPIN(in.PIN) {
		return nil, domain.ErrInvalidInput
	}
	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRolNoEncontrado
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		PIN:       in.PIN,
		RoleID:    in.RoleID,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un empleado por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update actualiza un empleado (campos opcionales).
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.PIN != nil {
		if !validPIN(*in.PIN) {
			return nil, domain.ErrInvalidInput
		}
		user.PIN = *in.PIN
	}
	if in.RoleID != nil {
		role, err := uc.roleRepo.GetByID(*in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrRolNoEncontrado
		}
		user.RoleID = *in.RoleID
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista empleados con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un empleado por ID.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		RoleID:    u.RoleID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
