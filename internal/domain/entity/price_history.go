package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistoryEntry registra un cambio de precio de un producto. Append-only;
// las vistas de "cambios recientes" lo ordenan por StartDate descendente.
type PriceHistoryEntry struct {
	ID        int64
	ProductID int64
	SKU       string
	Product   string
	Price     decimal.Decimal
	StartDate time.Time
	User      string // usuario que registró el cambio
}
