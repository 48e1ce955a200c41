package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos y estados de pago de una venta.
const (
	PaymentMethodCash     = "CASH"
	PaymentMethodCard     = "CARD"
	PaymentMethodTransfer = "TRANSFER"
	PaymentMethodCredit   = "CREDIT"

	PaymentStatusPaid    = "PAID"
	PaymentStatusPending = "PENDING"
	PaymentStatusPartial = "PARTIAL"
)

// Sale representa la cabecera de una venta. Inmutable después de creada:
// las correcciones se hacen mediante devoluciones.
type Sale struct {
	ID            string
	Number        string // VEN{YYYYMMDD}-{NNN}, único
	CustomerID    *string
	UserID        string
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	NetAmount     decimal.Decimal // total - descuento + impuesto
	PaymentMethod string
	PaymentStatus string
	Notes         string
	SaleDate      time.Time
	CreatedAt     time.Time
}

// SaleItem es una línea de venta, propiedad exclusiva de su cabecera
// (se elimina en cascada con ella). ProductID puede ser nil para líneas
// libres que no afectan stock.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID *string
	Name      string // descripción de la línea (nombre del producto al momento de la venta)
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
