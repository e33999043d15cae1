package repository

import (
	"context"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura para productos (DIP).
// Las implementaciones son read-only: este core nunca muta el inventario.
type ProductRepository interface {
	// List devuelve el snapshot completo de productos con los joins de
	// categoría y proveedor resueltos.
	List(ctx context.Context) ([]entity.Product, error)

	// GetBySKU busca por SKU con comparación insensible a mayúsculas y
	// espacios. Devuelve (nil, nil) si no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
