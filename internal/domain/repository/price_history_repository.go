package repository

import (
	"context"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// PriceHistoryRepository define el puerto de lectura del historial de precios.
type PriceHistoryRepository interface {
	// ListRecent devuelve las últimas `limit` entradas, más recientes primero.
	ListRecent(ctx context.Context, limit int) ([]entity.PriceHistoryEntry, error)
}
