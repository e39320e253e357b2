package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// combo_price es NUMERIC NULL: nil en la entidad significa sin combo.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, price, combo_price, image_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Price, comboToNull(product.ComboPrice),
		product.ImageURL, product.Status, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, category_id, name, price, combo_price, image_url, status, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	var combo decimal.NullDecimal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Price, &combo,
		&p.ImageURL, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	p.ComboPrice = comboFromNull(combo)
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, price = $4, combo_price = $5,
			image_url = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Price, comboToNull(product.ComboPrice),
		product.ImageURL, product.Status, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, name, price, combo_price, image_url, status, created_at, updated_at
		FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var combo decimal.NullDecimal
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Price, &combo,
			&p.ImageURL, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.ComboPrice = comboFromNull(combo)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByCategory cuenta los productos que referencian una categoría (guarda de borrado).
func (r *ProductRepo) CountByCategory(categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func comboToNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func comboFromNull(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}
