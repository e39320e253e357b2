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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para empleados.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, pin, role_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.PIN, user.RoleID, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, name, pin, role_id, status, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.PIN, &u.RoleID, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// Update actualiza un empleado.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, pin = $3, role_id = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.PIN, user.RoleID, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista empleados con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, name, pin, role_id, status, created_at, updated_at
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.PIN, &u.RoleID, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountByRole cuenta los empleados que referencian un rol (guarda de borrado).
func (r *UserRepo) CountByRole(roleID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE role_id = $1`, roleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return count, nil
}

// Delete elimina un empleado por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
