package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// Summary son los KPIs globales del tablero.
type Summary struct {
	TotalStock     int
	InventoryValue decimal.Decimal // sin redondear; el borde de presentación redondea
	CriticalCount  int             // regla IsCritical (umbral propio)
}

// CategoryRollup agrega los productos críticos de una categoría.
type CategoryRollup struct {
	Category      string
	CriticalCount int
	MinStockSeen  int // stock más bajo observado entre los críticos de la categoría
}

// CategoryCount es el conteo simple de productos por categoría.
type CategoryCount struct {
	Category string
	Count    int
}

// SupplierRollup agrega los productos de un proveedor.
type SupplierRollup struct {
	Supplier      entity.Supplier
	ProductCount  int
	CriticalCount int
}

// Summarize calcula los KPIs sobre el snapshot completo de productos.
// Entrada vacía produce el cero de cada métrica. El resultado no depende del
// orden de la entrada.
func Summarize(products []entity.Product) Summary {
	s := Summary{InventoryValue: decimal.Zero}
	for _, p := range products {
		s.TotalStock += p.Stock
		s.InventoryValue = s.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if IsCritical(p) {
			s.CriticalCount++
		}
	}
	return s
}

// ByCategory agrupa los productos críticos por categoría. Los productos sin
// categoría se agrupan bajo el rótulo CategoryNone. Orden: más críticos
// primero; a igual cantidad, la categoría con el stock observado más bajo.
func ByCategory(products []entity.Product) []CategoryRollup {
	byName := make(map[string]*CategoryRollup)
	for _, p := range products {
		if !IsCritical(p) {
			continue
		}
		name := p.CategoryName
		if name == "" {
			name = entity.CategoryNone
		}
		r, ok := byName[name]
		if !ok {
			r = &CategoryRollup{Category: name, MinStockSeen: p.Stock}
			byName[name] = r
		}
		r.CriticalCount++
		if p.Stock < r.MinStockSeen {
			r.MinStockSeen = p.Stock
		}
	}

	out := make([]CategoryRollup, 0, len(byName))
	for _, r := range byName {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CriticalCount != out[j].CriticalCount {
			return out[i].CriticalCount > out[j].CriticalCount
		}
		if out[i].MinStockSeen != out[j].MinStockSeen {
			return out[i].MinStockSeen < out[j].MinStockSeen
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CategoryCounts cuenta productos por categoría, ordenado por nombre.
func CategoryCounts(products []entity.Product) []CategoryCount {
	byName := make(map[string]int)
	for _, p := range products {
		name := p.CategoryName
		if name == "" {
			name = entity.CategoryNone
		}
		byName[name]++
	}
	out := make([]CategoryCount, 0, len(byName))
	for name, n := range byName {
		out = append(out, CategoryCount{Category: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// BySupplier agrega productos y críticos por proveedor. Recibe la lista de
// proveedores aparte para que los que no suministran nada aparezcan con
// conteos en cero. Orden: más críticos primero, después más productos.
func BySupplier(suppliers []entity.Supplier, products []entity.Product) []SupplierRollup {
	rollups := make([]SupplierRollup, len(suppliers))
	index := make(map[int64]*SupplierRollup, len(suppliers))
	for i, s := range suppliers {
		rollups[i] = SupplierRollup{Supplier: s}
		index[s.ID] = &rollups[i]
	}
	for _, p := range products {
		r, ok := index[p.SupplierID]
		if !ok {
			continue // producto sin proveedor o proveedor fuera del snapshot
		}
		r.ProductCount++
		if IsCritical(p) {
			r.CriticalCount++
		}
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].CriticalCount != rollups[j].CriticalCount {
			return rollups[i].CriticalCount > rollups[j].CriticalCount
		}
		if rollups[i].ProductCount != rollups[j].ProductCount {
			return rollups[i].ProductCount > rollups[j].ProductCount
		}
		return rollups[i].Supplier.Name < rollups[j].Supplier.Name
	})
	return rollups
}
