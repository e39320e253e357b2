package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/caja-rapida/internal/application/session"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

var _ session.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción, ejecuta fn con un repositorio de pedidos
// atado a la tx y hace Commit o Rollback. Cabecera y líneas del pedido quedan
// atómicas al confirmar un pago.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)

	if err := fn(orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
