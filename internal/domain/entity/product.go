package entity

import "github.com/shopspring/decimal"

// CategoryNone es el rótulo con el que se agrupan los productos sin categoría
// asignada en listados y roll-ups.
const CategoryNone = "Sin categoría"

// Product es la vista de lectura de un producto con sus joins de categoría y
// proveedor ya resueltos. Este servicio nunca lo muta; los caminos de
// escritura viven en otro sistema.
type Product struct {
	ID           int64
	SKU          string
	Name         string
	CategoryID   int64  // 0 si no tiene categoría
	CategoryName string // "" si no tiene categoría
	SupplierID   int64  // 0 si no tiene proveedor
	SupplierName string
	Stock        int
	MinStock     *int // nil = sin umbral definido; se sustituye por el default al clasificar
	Price        decimal.Decimal
}

// Category es el rótulo al que se le cuelgan productos (1:N).
type Category struct {
	ID   int64
	Name string
}

// Supplier representa un proveedor con sus datos de contacto (1:N con Product).
type Supplier struct {
	ID      int64
	Name    string
	Contact string
	Phone   string
	Email   string
}
