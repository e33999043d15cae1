package dto

import "github.com/shopspring/decimal"

// ProductRowDTO fila de los listados de inventario y críticos.
// Severity es la clasificación de tres niveles para el semáforo del cliente.
type ProductRowDTO struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"` // umbral efectivo (default aplicado)
	Price      decimal.Decimal `json:"price"`
	SupplierID int64           `json:"supplier_id,omitempty"`
	Severity   string          `json:"severity"`
}

// DailyFlowDTO un día de la ventana de movimientos.
type DailyFlowDTO struct {
	Day      string `json:"day"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// ProductDetailDTO respuesta de GET /api/products/:sku.
type ProductDetailDTO struct {
	Product   ProductRowDTO  `json:"product"`
	Movements []DailyFlowDTO `json:"movements"`
}
