package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, description, amount, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Amount, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT id, description, amount, created_at FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Description, &e.Amount, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense by id: %w", err)
	}
	return &e, nil
}

// List lista gastos con paginación (más recientes primero).
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, description, amount, created_at
		FROM expenses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	return scanExpenses(rows)
}

// ListByRange lista gastos en la ventana [from, to] con bordes inclusivos.
func (r *ExpenseRepo) ListByRange(from, to time.Time) ([]*entity.Expense, error) {
	query := `
		SELECT id, description, amount, created_at
		FROM expenses WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses by range: %w", err)
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func scanExpenses(rows pgx.Rows) ([]*entity.Expense, error) {
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
