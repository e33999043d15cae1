package entity

// User es la cuenta contra la que se valida el login. Solo la usa el gate de
// acceso; este servicio no crea ni modifica usuarios.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt; puede venir con espacios de relleno desde la DB
	Role         string
}
