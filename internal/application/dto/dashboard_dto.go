package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalStock     int             `json:"total_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"` // redondeado a 2 decimales
	CriticalCount  int             `json:"critical_count"`  // regla stock ≤ umbral propio
}

// CategoryRollupDTO fila de GET /api/categories/critical.
type CategoryRollupDTO struct {
	Category      string `json:"category"`
	CriticalCount int    `json:"critical_count"`
	MinStockSeen  int    `json:"min_stock_seen"`
}

// CategoryCountDTO fila de GET /api/categories.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SupplierRollupDTO fila de GET /api/suppliers.
type SupplierRollupDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ProductCount  int    `json:"product_count"`
	CriticalCount int    `json:"critical_count"`
}

// RoleCountDTO fila de GET /api/users/by-role.
type RoleCountDTO struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// PriceChangeDTO fila de GET /api/prices/recent.
type PriceChangeDTO struct {
	SKU       string          `json:"sku"`
	Product   string          `json:"product"`
	Price     decimal.Decimal `json:"price"`
	StartDate string          `json:"start_date"` // "2006-01-02 15:04:05"
	User      string          `json:"user"`
}
