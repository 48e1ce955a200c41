package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuotationStatusDraft     = "DRAFT"
	QuotationStatusSent      = "SENT"
	QuotationStatusAccepted  = "ACCEPTED"
	QuotationStatusRejected  = "REJECTED"
	QuotationStatusConverted = "CONVERTED"
)

// quotationTransitions tabla explícita de transiciones permitidas.
// CONVERTED solo se alcanza vía ConvertToSale, nunca por cambio directo.
var quotationTransitions = map[string][]string{
	QuotationStatusDraft:    {QuotationStatusSent},
	QuotationStatusSent:     {QuotationStatusAccepted, QuotationStatusRejected},
	QuotationStatusAccepted: {QuotationStatusConverted},
}

// CanTransitionQuotation indica si el cambio de estado from -> to está en la tabla.
func CanTransitionQuotation(from, to string) bool {
	for _, allowed := range quotationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Quotation representa una cotización. No afecta stock: el descuento
// ocurre al convertirla en venta.
type Quotation struct {
	ID          string
	Number      string // COT{YYYYMMDD}-{NNN}, único
	CustomerID  *string
	UserID      string
	Status      string
	TotalAmount decimal.Decimal
	ValidUntil  *time.Time
	SaleID      *string // venta generada al convertir
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuotationItem es una línea de cotización, propiedad de su cabecera.
type QuotationItem struct {
	ID          string
	QuotationID string
	ProductID   *string
	Name        string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
