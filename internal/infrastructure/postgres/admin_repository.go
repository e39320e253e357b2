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

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de persistencia para administradores.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un nuevo administrador.
func (r *AdminRepo) Create(admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		admin.ID, admin.Email, admin.PasswordHash, admin.Name, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un administrador por ID.
func (r *AdminRepo) GetByID(id string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admins WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get admin by id")
}

// FindByEmail obtiene un administrador por email.
func (r *AdminRepo) FindByEmail(email string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admins WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get admin by email")
}

func (r *AdminRepo) scanOne(row pgx.Row, op string) (*entity.Admin, error) {
	var a entity.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
