package repository

import (
	"context"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// RoleCount es el conteo de usuarios agrupado por rol.
type RoleCount struct {
	Role  string
	Count int
}

// UserRepository define el puerto de lectura para usuarios.
type UserRepository interface {
	// GetByUsername devuelve (nil, nil) si el usuario no existe; un error
	// solo cuando el almacén falla.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// CountByRole agrupa los usuarios por rol, más numerosos primero.
	CountByRole(ctx context.Context) ([]RoleCount, error)
}
