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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, category.ID, category.Name, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista todas las categorías.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID. La guarda de referencias la aplica el caso de uso.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
