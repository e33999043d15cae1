package reporting

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
	"github.com/jhoicas/stockboard-api/internal/domain/stock"
)

const defaultRecentPrices = 20 // filas del widget de cambios de precio

// DashboardUseCase arma los widgets del tablero: KPIs, críticos, roll-ups por
// categoría y proveedor, usuarios por rol y cambios recientes de precio.
// Todo el cálculo ocurre en memoria sobre el snapshot que entregan los repos.
type DashboardUseCase struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	users     repository.UserRepository
	prices    repository.PriceHistoryRepository
	cache     SummaryCache
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	users repository.UserRepository,
	prices repository.PriceHistoryRepository,
	cache SummaryCache,
) *DashboardUseCase {
	return &DashboardUseCase{
		products:  products,
		suppliers: suppliers,
		users:     users,
		prices:    prices,
		cache:     cache,
	}
}

// GetSummary devuelve los KPIs globales. El valor del inventario se calcula
// a precisión completa y se redondea a 2 decimales recién acá, en el borde de
// presentación. Pasa por el caché de resumen cuando está habilitado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached, ok, err := uc.cache.Get(ctx); err == nil && ok {
		return cached, nil
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	s := stock.Summarize(products)
	out := &dto.DashboardSummaryDTO{
		TotalStock:     s.TotalStock,
		InventoryValue: s.InventoryValue.Round(2),
		CriticalCount:  s.CriticalCount,
	}
	_ = uc.cache.Set(ctx, out) // mejor-esfuerzo
	return out, nil
}

// CriticalProducts lista los productos críticos según la regla del KPI
// (stock ≤ umbral propio), ordenados por stock ascendente y nombre.
func (uc *DashboardUseCase) CriticalProducts(ctx context.Context) ([]dto.ProductRowDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	rows := make([]dto.ProductRowDTO, 0)
	for _, p := range products {
		if stock.IsCritical(p) {
			rows = append(rows, toProductRow(p))
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Stock != rows[j].Stock {
			return rows[i].Stock < rows[j].Stock
		}
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}

// CategoryRollups devuelve las categorías con productos críticos, las más
// urgentes primero.
func (uc *DashboardUseCase) CategoryRollups(ctx context.Context) ([]dto.CategoryRollupDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	rollups := stock.ByCategory(products)
	out := make([]dto.CategoryRollupDTO, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, dto.CategoryRollupDTO{
			Category:      r.Category,
			CriticalCount: r.CriticalCount,
			MinStockSeen:  r.MinStockSeen,
		})
	}
	return out, nil
}

// CategoryCounts devuelve el conteo de productos por categoría.
func (uc *DashboardUseCase) CategoryCounts(ctx context.Context) ([]dto.CategoryCountDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	counts := stock.CategoryCounts(products)
	out := make([]dto.CategoryCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CategoryCountDTO{Category: c.Category, Count: c.Count})
	}
	return out, nil
}

// SupplierRollups devuelve los proveedores con sus conteos de productos y
// críticos; los que no suministran nada aparecen con cero.
func (uc *DashboardUseCase) SupplierRollups(ctx context.Context) ([]dto.SupplierRollupDTO, error) {
	suppliers, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar proveedores: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	rollups := stock.BySupplier(suppliers, products)
	out := make([]dto.SupplierRollupDTO, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, dto.SupplierRollupDTO{
			ID:            r.Supplier.ID,
			Name:          r.Supplier.Name,
			Contact:       r.Supplier.Contact,
			Phone:         r.Supplier.Phone,
			Email:         r.Supplier.Email,
			ProductCount:  r.ProductCount,
			CriticalCount: r.CriticalCount,
		})
	}
	return out, nil
}

// UsersByRole devuelve el conteo de usuarios por rol.
func (uc *DashboardUseCase) UsersByRole(ctx context.Context) ([]dto.RoleCountDTO, error) {
	counts, err := uc.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: usuarios por rol: %w", err)
	}
	out := make([]dto.RoleCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.RoleCountDTO{Role: c.Role, Count: c.Count})
	}
	return out, nil
}

// RecentPriceChanges devuelve los últimos cambios de precio, más recientes
// primero.
func (uc *DashboardUseCase) RecentPriceChanges(ctx context.Context) ([]dto.PriceChangeDTO, error) {
	entries, err := uc.prices.ListRecent(ctx, defaultRecentPrices)
	if err != nil {
		return nil, fmt.Errorf("dashboard: historial de precios: %w", err)
	}
	out := make([]dto.PriceChangeDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.PriceChangeDTO{
			SKU:       e.SKU,
			Product:   e.Product,
			Price:     e.Price,
			StartDate: e.StartDate.Format("2006-01-02 15:04:05"),
			User:      e.User,
		})
	}
	return out, nil
}
