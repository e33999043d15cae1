package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// DefaultRedirect es el destino fijo post-login si la configuración no
// define otro.
const DefaultRedirect = "/dashboard.html"

// VerifyFunc compara el secreto en claro contra el hash almacenado.
type VerifyFunc func(secret, storedHash string) bool

// BcryptVerify es la verificación de producción. El hash se recorta porque la
// columna original lo guarda con relleno de espacios.
func BcryptVerify(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(storedHash)), []byte(secret)) == nil
}

// AuthUseCase es el gate de acceso: valida identificador/secreto y responde
// con el destino de redirección fijo. No emite tokens ni maneja sesión.
type AuthUseCase struct {
	users    repository.UserRepository
	verify   VerifyFunc
	redirect string
}

// NewAuthUseCase construye el gate. verify nil usa bcrypt; redirect vacío usa
// DefaultRedirect.
func NewAuthUseCase(users repository.UserRepository, verify VerifyFunc, redirect string) *AuthUseCase {
	if verify == nil {
		verify = BcryptVerify
	}
	if redirect == "" {
		redirect = DefaultRedirect
	}
	return &AuthUseCase{users: users, verify: verify, redirect: redirect}
}

// Login valida las credenciales.
//
//   - Campos vacíos tras recortar → ErrMissingFields, sin tocar la DB.
//   - Usuario inexistente o contraseña incorrecta → ErrInvalidCredentials.
//     Los dos casos colapsan en el único punto donde se juntan lookup y
//     verify; ningún camino posterior puede distinguirlos.
//   - Fallo del almacén → ErrUnavailable (el detalle queda envuelto para el
//     log, nunca para el cliente).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	if user == nil || !uc.verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return &dto.LoginResponse{Granted: true, Redirect: uc.redirect}, nil
}
