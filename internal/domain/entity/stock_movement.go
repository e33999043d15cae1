package entity

import "time"

// Signos de los tipos de movimiento: la dirección del movimiento la codifica
// el tipo, no la cantidad (la cantidad siempre se persiste positiva).
const (
	SignIn  = "+" // entrada
	SignOut = "-" // salida
)

// StockMovement es un registro del log de movimientos de stock (append-only).
type StockMovement struct {
	ID        int64
	ProductID int64
	SKU       string // join con products
	Product   string // nombre del producto
	Date      time.Time
	TypeName  string // compra, venta, ajuste...
	Sign      string // "+" o "-"
	Quantity  int    // siempre ≥ 0; el signo va aparte
	User      string // usuario responsable
	Note      string
}

// Inbound indica si el movimiento suma stock.
func (m StockMovement) Inbound() bool { return m.Sign == SignIn }
