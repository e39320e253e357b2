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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador de persistencia para insumos.
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo insumo.
func (r *IngredientRepo) Create(ingredient *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, stock, unit, min_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.Stock, ingredient.Unit,
		ingredient.MinLevel, ingredient.CreatedAt, ingredient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, stock, unit, min_level, created_at, updated_at
		FROM ingredients WHERE id = $1`
	var i entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Stock, &i.Unit, &i.MinLevel, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by id: %w", err)
	}
	return &i, nil
}

// Update actualiza un insumo.
func (r *IngredientRepo) Update(ingredient *entity.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, stock = $3, unit = $4, min_level = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.Stock, ingredient.Unit,
		ingredient.MinLevel, ingredient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// List lista insumos con paginación.
func (r *IngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, stock, unit, min_level, created_at, updated_at
		FROM ingredients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

// ListBelowMinimum lista insumos en o por debajo del nivel mínimo.
func (r *IngredientRepo) ListBelowMinimum() ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, stock, unit, min_level, created_at, updated_at
		FROM ingredients WHERE stock <= min_level ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients below minimum: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

func scanIngredients(rows pgx.Rows) ([]*entity.Ingredient, error) {
	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Stock, &i.Unit, &i.MinLevel, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un insumo por ID.
func (r *IngredientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}
