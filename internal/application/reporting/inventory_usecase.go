package reporting

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/lookup"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
	"github.com/jhoicas/stockboard-api/internal/domain/stock"
)

// InventoryUseCase cubre los listados de inventario y la ficha de producto
// con su ventana de movimientos.
type InventoryUseCase struct {
	products   repository.ProductRepository
	movements  repository.MovementRepository
	windowDays int
}

// NewInventoryUseCase construye el caso de uso. windowDays ≤ 0 usa la ventana
// por defecto de 30 días.
func NewInventoryUseCase(products repository.ProductRepository, movements repository.MovementRepository, windowDays int) *InventoryUseCase {
	if windowDays <= 0 {
		windowDays = stock.DefaultWindowDays
	}
	return &InventoryUseCase{products: products, movements: movements, windowDays: windowDays}
}

// List devuelve el inventario completo ordenado por nombre. supplierFilter
// acepta el ID del proveedor; vacío lista todo y un valor no numérico no
// matchea ningún producto.
func (uc *InventoryUseCase) List(ctx context.Context, supplierFilter string) ([]dto.ProductRowDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventario: listar productos: %w", err)
	}

	supplierFilter = strings.TrimSpace(supplierFilter)
	if supplierFilter != "" {
		supplierID, err := strconv.ParseInt(supplierFilter, 10, 64)
		if err != nil {
			return []dto.ProductRowDTO{}, nil
		}
		filtered := products[:0:0]
		for _, p := range products {
			if p.SupplierID == supplierID {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	rows := toProductRows(products)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

// ProductsByCategory lista los productos de una categoría identificada por ID
// numérico o por nombre (insensible a mayúsculas/espacios). Una clave que no
// matchea nada devuelve lista vacía, no error. Orden: stock ascendente,
// después nombre.
func (uc *InventoryUseCase) ProductsByCategory(ctx context.Context, rawKey string) ([]dto.ProductRowDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventario: listar productos: %w", err)
	}

	key := lookup.ResolveCategoryKey(rawKey)
	matched := make([]dto.ProductRowDTO, 0)
	for _, p := range products {
		if key.ByID() {
			if p.CategoryID != key.ID {
				continue
			}
		} else if lookup.NormalizeKey(p.CategoryName) != key.Name {
			continue
		}
		matched = append(matched, toProductRow(p))
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Stock != matched[j].Stock {
			return matched[i].Stock < matched[j].Stock
		}
		return matched[i].Name < matched[j].Name
	})
	return matched, nil
}

// Detail devuelve la ficha del producto con su ventana diaria de movimientos
// de los últimos windowDays días. SKU inexistente → domain.ErrNotFound.
func (uc *InventoryUseCase) Detail(ctx context.Context, sku string) (*dto.ProductDetailDTO, error) {
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("inventario: buscar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	asOf := time.Now()
	lower := asOf.AddDate(0, 0, -uc.windowDays)
	movements, err := uc.movements.ListBySKU(ctx, sku, &lower, nil)
	if err != nil {
		return nil, fmt.Errorf("inventario: movimientos de %s: %w", product.SKU, err)
	}

	return &dto.ProductDetailDTO{
		Product:   toProductRow(*product),
		Movements: toDailyFlows(stock.WindowedDaily(movements, asOf, uc.windowDays)),
	}, nil
}
