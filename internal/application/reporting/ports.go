// Package reporting contiene los casos de uso de lectura del tablero:
// KPIs, listados, roll-ups, ventana de movimientos y exportaciones.
package reporting

import (
	"context"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/report"
)

// SummaryCache cachea el resumen del tablero (puerto; implementación Redis o
// noop). El caché es mejor-esfuerzo: sus errores no deben tumbar la consulta.
type SummaryCache interface {
	Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error)
	Set(ctx context.Context, summary *dto.DashboardSummaryDTO) error
}

// WorkbookGenerator produce el libro XLSX del inventario completo.
type WorkbookGenerator interface {
	InventoryWorkbook(rows []dto.ProductRowDTO) ([]byte, error)
}

// MovementPDFGenerator produce la versión PDF del reporte de movimientos de
// un producto.
type MovementPDFGenerator interface {
	MovementReport(product entity.Product, movements []entity.StockMovement, rng report.DateRange) ([]byte, error)
}
