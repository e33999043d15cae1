package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo lectura de proveedores.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de lectura de proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// List devuelve todos los proveedores con sus datos de contacto.
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	query := `
		SELECT id, name, COALESCE(contact, ''), COALESCE(phone, ''), COALESCE(email, '')
		FROM suppliers
		ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.Email); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}
