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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Insert escribe cabecera y líneas; debe ejecutarse dentro de una transacción
// (ver TxRunner) para que ambas queden atómicas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Insert persiste la cabecera del pedido y sus líneas.
func (r *OrderRepo) Insert(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, shift_id, total, status, payment_method, customer_name, customer_phone, estimated_min, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	shiftID := (*string)(nil)
	if order.ShiftID != "" {
		shiftID = &order.ShiftID
	}
	_, err := r.q.Exec(ctx, query,
		order.ID, shiftID, order.Total, order.Status, order.PaymentMethod,
		order.CustomerName, order.CustomerPhone, order.EstimatedMin,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_items (line_id, order_id, product_id, name, unit_price, quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range order.Items {
		if _, err := r.q.Exec(ctx, lineQuery,
			it.ID, order.ID, it.ProductID, it.Name, it.UnitPrice, it.Quantity, it.ImageURL,
		); err != nil {
			return fmt.Errorf("insert order item %s: %w", it.ID, err)
		}
	}
	return nil
}

// UpdateStatus actualiza el estado de un pedido. La validación de la transición
// es responsabilidad del dominio; aquí solo se persiste.
func (r *OrderRepo) UpdateStatus(id string, status entity.OrderStatus, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()
	query := `
		SELECT id, COALESCE(shift_id, ''), total, status, payment_method,
			customer_name, customer_phone, estimated_min, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.ShiftID, &o.Total, &o.Status, &o.PaymentMethod,
		&o.CustomerName, &o.CustomerPhone, &o.EstimatedMin, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// ListByRange lista pedidos en la ventana [from, to] con bordes inclusivos.
func (r *OrderRepo) ListByRange(from, to time.Time) ([]*entity.Order, error) {
	query := `
		SELECT id, COALESCE(shift_id, ''), total, status, payment_method,
			customer_name, customer_phone, estimated_min, created_at, updated_at
		FROM orders WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at`
	return r.list(query, from, to)
}

// ListByShift lista los pedidos de un turno, en orden de creación.
func (r *OrderRepo) ListByShift(shiftID string) ([]*entity.Order, error) {
	query := `
		SELECT id, COALESCE(shift_id, ''), total, status, payment_method,
			customer_name, customer_phone, estimated_min, created_at, updated_at
		FROM orders WHERE shift_id = $1 ORDER BY created_at`
	return r.list(query, shiftID)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ShiftID, &o.Total, &o.Status, &o.PaymentMethod,
			&o.CustomerName, &o.CustomerPhone, &o.EstimatedMin, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

// loadItems carga las líneas de un conjunto de pedidos en una sola consulta.
func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []string) (map[string][]entity.CartItem, error) {
	query := `
		SELECT line_id, order_id, product_id, name, unit_price, quantity, image_url
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, line_id`
	rows, err := r.q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.CartItem)
	for rows.Next() {
		var it entity.CartItem
		var orderID string
		if err := rows.Scan(&it.ID, &orderID, &it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity, &it.ImageURL); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}
