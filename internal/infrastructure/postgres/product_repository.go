package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Solo lectura: el inventario lo mutan otros sistemas.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de lectura de productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `
	p.id, p.sku, p.name,
	COALESCE(p.category_id, 0), COALESCE(c.name, ''),
	COALESCE(p.supplier_id, 0), COALESCE(s.name, ''),
	p.stock, p.min_stock, p.price`

// List devuelve el snapshot completo con los joins de categoría y proveedor.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers  s ON s.id = p.supplier_id
		ORDER BY p.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name,
			&p.CategoryID, &p.CategoryName,
			&p.SupplierID, &p.SupplierName,
			&p.Stock, &p.MinStock, &p.Price,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetBySKU busca por SKU normalizando ambos lados, como hace el resto del
// sistema con las claves de texto. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers  s ON s.id = p.supplier_id
		WHERE UPPER(BTRIM(p.sku)) = UPPER(BTRIM($1))`
	var p entity.Product
	err := r.pool.QueryRow(ctx, query, sku).Scan(
		&p.ID, &p.SKU, &p.Name,
		&p.CategoryID, &p.CategoryName,
		&p.SupplierID, &p.SupplierName,
		&p.Stock, &p.MinStock, &p.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}
