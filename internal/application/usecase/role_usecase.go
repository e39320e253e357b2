package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

// RoleUseCase CRUD de roles con validación de la enumeración de permisos.
type RoleUseCase struct {
	repo     repository.RoleRepository
	userRepo repository.UserRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, userRepo repository.UserRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo, userRepo: userRepo}
}

func validatePermissions(perms []string) error {
	if len(perms) == 0 {
		return domain.ErrInvalidInput
	}
	for _, p := range perms {
		if !entity.IsValidPermission(p) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// Create crea un rol. Los permisos deben pertenecer a la enumeración cerrada.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if err := validatePermissions(in.Permissions); err != nil {
		return nil, err
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// Update actualiza un rol.
func (uc *RoleUseCase) Update(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Permissions != nil {
		if err := validatePermissions(in.Permissions); err != nil {
			return nil, err
		}
		role.Permissions = in.Permissions
	}
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List lista todos los roles.
func (uc *RoleUseCase) List() (*dto.RoleListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items}, nil
}

// Delete elimina un rol. Precondición local (detectada antes de tocar la BD
// para el borrado): ningún usuario puede seguir referenciando el rol.
func (uc *RoleUseCase) Delete(id string) error {
	count, err := uc.userRepo.CountByRole(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRolEnUso
	}
	return uc.repo.Delete(id)
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
