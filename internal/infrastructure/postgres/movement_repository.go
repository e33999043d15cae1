package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo lectura del log de movimientos de stock.
type MovementRepo struct {
	pool *pgxpool.Pool
}

// NewMovementRepository construye el adaptador de lectura de movimientos.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepo {
	return &MovementRepo{pool: pool}
}

// ListBySKU devuelve los movimientos del producto, más recientes primero.
// Las cotas de fecha se agregan al WHERE solo si vienen definidas.
func (r *MovementRepo) ListBySKU(ctx context.Context, sku string, from, to *time.Time) ([]entity.StockMovement, error) {
	query := `
		SELECT ms.id, ms.product_id, p.sku, p.name, ms.moved_at,
		       mt.name, mt.sign, ms.quantity,
		       COALESCE(ms.moved_by, ''), COALESCE(ms.note, '')
		FROM stock_movements ms
		JOIN movement_types mt ON mt.id = ms.type_id
		JOIN products p        ON p.id  = ms.product_id
		WHERE UPPER(BTRIM(p.sku)) = UPPER(BTRIM($1))`
	args := []any{sku}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND ms.moved_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND ms.moved_at <= $%d", len(args))
	}
	query += " ORDER BY ms.moved_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.SKU, &m.Product, &m.Date,
			&m.TypeName, &m.Sign, &m.Quantity,
			&m.User, &m.Note,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
