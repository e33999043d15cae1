package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de usuarios para el gate de login y el widget de roles.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de lectura de usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByUsername obtiene un usuario por identificador. Devuelve (nil, nil) si
// no existe; el gate decide qué responder sin distinguir este caso.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, COALESCE(ro.name, '')
		FROM users u
		LEFT JOIN roles ro ON ro.id = u.role_id
		WHERE u.username = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// CountByRole agrupa los usuarios por rol, más numerosos primero. Usuarios
// sin rol caen bajo 'Sin rol'.
func (r *UserRepo) CountByRole(ctx context.Context) ([]repository.RoleCount, error) {
	query := `
		SELECT COALESCE(ro.name, 'Sin rol') AS role, COUNT(u.id) AS total
		FROM users u
		LEFT JOIN roles ro ON ro.id = u.role_id
		GROUP BY ro.name
		ORDER BY total DESC, role`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}
	defer rows.Close()

	var counts []repository.RoleCount
	for rows.Next() {
		var c repository.RoleCount
		if err := rows.Scan(&c.Role, &c.Count); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
