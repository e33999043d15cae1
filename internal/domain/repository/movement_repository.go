package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// MovementRepository define el puerto de lectura del log de movimientos.
type MovementRepository interface {
	// ListBySKU devuelve los movimientos del producto ordenados por fecha
	// descendente. from/to acotan el rango (inclusive); nil = sin cota.
	ListBySKU(ctx context.Context, sku string, from, to *time.Time) ([]entity.StockMovement, error)
}
