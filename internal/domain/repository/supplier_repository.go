package repository

import (
	"context"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura para proveedores.
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
}
