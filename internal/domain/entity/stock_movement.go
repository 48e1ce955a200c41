package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada (recepción de orden de compra, entrada manual)
	MovementTypeOUT        = "OUT"        // salida (venta, salida manual, reversa de devolución)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual, puede ser positivo o negativo
	MovementTypeRETURN     = "RETURN"     // devolución de cliente, siempre suma
)

// ValidMovementType indica si t es uno de los tipos de movimiento conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT, MovementTypeRETURN:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del log de auditoría de stock.
// Quantity guarda siempre la magnitud (>= 0); la dirección se recupera del
// tipo y del par PreviousStock/NewStock. Nunca se actualiza ni se borra:
// una cancelación genera un movimiento compensatorio, no una edición.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string
	Quantity      int64 // magnitud, siempre >= 0
	PreviousStock int64
	NewStock      int64
	Reference     string // número del documento que causó el movimiento (ej. VEN20240115-001)
	Reason        string
	UserID        string
	SaleID        *string // venta causante, si aplica
	CreatedAt     time.Time
}
