package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/usecase"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: solo lo que las guardas ejercitan
// ──────────────────────────────────────────────────────────────────────────────

type stubRoleRepo struct {
	roles   map[string]*entity.Role
	deleted []string
}

func (s *stubRoleRepo) Create(r *entity.Role) error { return nil }
func (s *stubRoleRepo) GetByID(id string) (*entity.Role, error) {
	return s.roles[id], nil
}
func (s *stubRoleRepo) Update(r *entity.Role) error   { return nil }
func (s *stubRoleRepo) List() ([]*entity.Role, error) { return nil, nil }
func (s *stubRoleRepo) Delete(id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubUserRepo struct {
	countByRole map[string]int
}

func (s *stubUserRepo) Create(u *entity.User) error                    { return nil }
func (s *stubUserRepo) GetByID(id string) (*entity.User, error)        { return nil, nil }
func (s *stubUserRepo) Update(u *entity.User) error                    { return nil }
func (s *stubUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (s *stubUserRepo) CountByRole(roleID string) (int, error)         { return s.countByRole[roleID], nil }
func (s *stubUserRepo) Delete(id string) error                         { return nil }

type stubCategoryRepo struct {
	categories map[string]*entity.Category
	deleted    []string
}

func (s *stubCategoryRepo) Create(c *entity.Category) error { return nil }
func (s *stubCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return s.categories[id], nil
}
func (s *stubCategoryRepo) Update(c *entity.Category) error   { return nil }
func (s *stubCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }
func (s *stubCategoryRepo) Delete(id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubProductRepo struct {
	countByCategory map[string]int
}

func (s *stubProductRepo) Create(p *entity.Product) error                    { return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error)        { return nil, nil }
func (s *stubProductRepo) Update(p *entity.Product) error                    { return nil }
func (s *stubProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (s *stubProductRepo) CountByCategory(categoryID string) (int, error) {
	return s.countByCategory[categoryID], nil
}
func (s *stubProductRepo) Delete(id string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de borrado de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleDelete_RechazadoConEmpleadosAsignados(t *testing.T) {
	roles := &stubRoleRepo{roles: map[string]*entity.Role{}}
	users := &stubUserRepo{countByRole: map[string]int{"r1": 3}}
	uc := usecase.NewRoleUseCase(roles, users)

	err := uc.Delete("r1")
	require.ErrorIs(t, err, domain.ErrRolEnUso,
		"un rol con empleados asignados no debe poder borrarse")
	assert.Empty(t, roles.deleted)
}

func TestRoleDelete_PermitidoSinEmpleados(t *testing.T) {
	roles := &stubRoleRepo{roles: map[string]*entity.Role{}}
	users := &stubUserRepo{countByRole: map[string]int{}}
	uc := usecase.NewRoleUseCase(roles, users)

	require.NoError(t, uc.Delete("r1"))
	assert.Equal(t, []string{"r1"}, roles.deleted)
}

func TestRoleCreate_PermisosFueraDeLaEnumeracion(t *testing.T) {
	uc := usecase.NewRoleUseCase(&stubRoleRepo{}, &stubUserRepo{})

	_, err := uc.Create(dto.CreateRoleRequest{Name: "raro", Permissions: []string{"superadmin"}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateRoleRequest{Name: "vacío", Permissions: nil})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "un rol sin permisos no tiene sentido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de borrado de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_RechazadoConProductos(t *testing.T) {
	categories := &stubCategoryRepo{categories: map[string]*entity.Category{}}
	products := &stubProductRepo{countByCategory: map[string]int{"c1": 5}}
	uc := usecase.NewCategoryUseCase(categories, products)

	err := uc.Delete("c1")
	require.ErrorIs(t, err, domain.ErrCategoriaEnUso)
	assert.Empty(t, categories.deleted)
}

func TestCategoryDelete_PermitidoVacia(t *testing.T) {
	categories := &stubCategoryRepo{categories: map[string]*entity.Category{}}
	products := &stubProductRepo{countByCategory: map[string]int{}}
	uc := usecase.NewCategoryUseCase(categories, products)

	require.NoError(t, uc.Delete("c1"))
	assert.Equal(t, []string{"c1"}, categories.deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de PIN en empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_ValidaPIN(t *testing.T) {
	roles := &stubRoleRepo{roles: map[string]*entity.Role{
		"r1": {ID: "r1", Name: "cajero", Permissions: []string{entity.PermCaja}},
	}}
	uc := usecase.NewUserUseCase(&stubUserRepo{}, roles)

	cases := []string{"123", "12345", "12a4", "", "١٢٣٤x"}
	for _, pin := range cases {
		_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", PIN: pin, RoleID: "r1"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "PIN %q debe rechazarse", pin)
	}

	out, err := uc.Create(dto.CreateUserRequest{Name: "Ana", PIN: "0042", RoleID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name)
}

func TestUserCreate_RolInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(&stubUserRepo{}, &stubRoleRepo{roles: map[string]*entity.Role{}})

	_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", PIN: "1234", RoleID: "r-nada"})
	require.ErrorIs(t, err, domain.ErrRolNoEncontrado)
}
