package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Permissions se almacena como text[].
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&role.ID, &role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by id: %w", err)
	}
	return &role, nil
}

// Update actualiza un rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, permissions = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Permissions, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// List lista todos los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Delete elimina un rol por ID. La guarda de referencias la aplica el caso de uso.
func (r *RoleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
