// Package stock contiene las reglas puras de clasificación y agregación de
// inventario: severidad por producto, KPIs del tablero, roll-ups por categoría
// y proveedor, y el ventaneo diario de movimientos. Todo opera sobre
// snapshots en memoria; nada aquí toca I/O.
package stock

import "github.com/jhoicas/stockboard-api/internal/domain/entity"

// Severity es la clasificación de tres niveles del stock de un producto.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityLow      Severity = "low"
	SeverityNormal   Severity = "normal"
)

const (
	// HardFloor es el piso global de emergencia: con este stock o menos un
	// producto es crítico sin importar su propio umbral. Es una constante del
	// sistema, no configurable por producto.
	HardFloor = 2

	// DefaultMinThreshold sustituye al umbral mínimo cuando el producto no
	// tiene uno definido.
	DefaultMinThreshold = 9
)

// Classify aplica la política de dos niveles para la severidad visible:
// primero el piso global, después el umbral de reposición del producto.
// Función total: no hay casos de error.
func Classify(stock, minThreshold int) Severity {
	switch {
	case stock <= HardFloor:
		return SeverityCritical
	case stock <= minThreshold:
		return SeverityLow
	default:
		return SeverityNormal
	}
}

// Threshold devuelve el umbral mínimo efectivo del producto, con el default
// aplicado si no tiene uno propio.
func Threshold(p entity.Product) int {
	if p.MinStock == nil {
		return DefaultMinThreshold
	}
	return *p.MinStock
}

// ClassifyProduct clasifica un producto con su umbral efectivo.
func ClassifyProduct(p entity.Product) Severity {
	return Classify(p.Stock, Threshold(p))
}

// IsCritical es la regla del KPI "productos críticos": stock ≤ umbral propio.
// Nota: es deliberadamente distinta de Classify, que además aplica el piso
// global. El sistema expone ambas definiciones y cada consumidor usa la suya.
func IsCritical(p entity.Product) bool {
	return p.Stock <= Threshold(p)
}
