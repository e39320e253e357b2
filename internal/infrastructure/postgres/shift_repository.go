package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de persistencia para turnos.
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// Insert persiste la apertura de un turno (end_time NULL).
func (r *ShiftRepo) Insert(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, user_id, user_name, start_time, end_time, total_sales, order_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.UserID, shift.UserName, shift.StartTime, shift.EndTime,
		shift.TotalSales, shift.OrderCount,
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// Close persiste el cierre: end_time, total de ventas y conteo de pedidos.
func (r *ShiftRepo) Close(shift *entity.Shift) error {
	query := `
		UPDATE shifts SET end_time = $2, total_sales = $3, order_count = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.EndTime, shift.TotalSales, shift.OrderCount,
	)
	if err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `
		SELECT id, user_id, user_name, start_time, end_time, total_sales, order_count
		FROM shifts WHERE id = $1`
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.UserName, &s.StartTime, &s.EndTime, &s.TotalSales, &s.OrderCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift by id: %w", err)
	}
	return &s, nil
}

// List lista turnos con paginación (más recientes primero).
func (r *ShiftRepo) List(limit, offset int) ([]*entity.Shift, error) {
	query := `
		SELECT id, user_id, user_name, start_time, end_time, total_sales, order_count
		FROM shifts ORDER BY start_time DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.UserID, &s.UserName, &s.StartTime, &s.EndTime, &s.TotalSales, &s.OrderCount); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
