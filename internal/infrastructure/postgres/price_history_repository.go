package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// PriceHistoryRepo lectura del historial de precios.
type PriceHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewPriceHistoryRepository construye el adaptador de lectura del historial.
func NewPriceHistoryRepository(pool *pgxpool.Pool) *PriceHistoryRepo {
	return &PriceHistoryRepo{pool: pool}
}

// ListRecent devuelve las últimas entradas ordenadas por fecha de inicio
// descendente. Los joins son LEFT por si el producto o el usuario ya no existen.
func (r *PriceHistoryRepo) ListRecent(ctx context.Context, limit int) ([]entity.PriceHistoryEntry, error) {
	query := `
		SELECT ph.id, ph.product_id, COALESCE(p.sku, ''), COALESCE(p.name, ''),
		       ph.price, ph.start_date, COALESCE(u.username, '')
		FROM price_history ph
		LEFT JOIN products p ON p.id = ph.product_id
		LEFT JOIN users    u ON u.id = ph.user_id
		ORDER BY ph.start_date DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}
	defer rows.Close()

	var entries []entity.PriceHistoryEntry
	for rows.Next() {
		var e entity.PriceHistoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.SKU, &e.Product, &e.Price, &e.StartDate, &e.User); err != nil {
			return nil, fmt.Errorf("scan price history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
