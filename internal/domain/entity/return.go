package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una devolución.
const (
	ReturnStatusActive    = "ACTIVE"
	ReturnStatusCancelled = "CANCELLED"
)

// Métodos de reembolso.
const (
	RefundMethodCash   = "CASH"
	RefundMethodCredit = "CREDIT" // nota crédito / saldo a favor
)

// Return representa una devolución de cliente. Puede referenciar la venta
// original o no (devolución sin ticket). La cancelación marca CANCELLED y
// aplica la reversa de stock vía ledger; nunca se borra.
type Return struct {
	ID           string
	Number       string // DEV{YYYYMMDD}-{NNN}, único
	SaleID       *string
	UserID       string
	RefundMethod string
	Reason       string
	TotalAmount  decimal.Decimal
	Status       string
	ReturnDate   time.Time
	CreatedAt    time.Time
}

// ReturnItem es una línea de devolución, propiedad de su cabecera.
type ReturnItem struct {
	ID        string
	ReturnID  string
	ProductID *string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
