package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	POStatusDraft     = "DRAFT"
	POStatusSent      = "SENT"
	POStatusPartial   = "PARTIAL"
	POStatusReceived  = "RECEIVED"
	POStatusCancelled = "CANCELLED"
)

// poTransitions es la tabla explícita de transiciones permitidas.
// PARTIAL -> PARTIAL cubre recepciones sucesivas de la misma orden.
var poTransitions = map[string][]string{
	POStatusDraft:   {POStatusSent, POStatusCancelled},
	POStatusSent:    {POStatusPartial, POStatusReceived, POStatusCancelled},
	POStatusPartial: {POStatusPartial, POStatusReceived},
}

// CanTransitionPO indica si el cambio de estado from -> to está en la tabla.
func CanTransitionPO(from, to string) bool {
	for _, allowed := range poTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PurchaseOrder representa una orden de compra a proveedor.
// ActualDeliveryDate se fija únicamente en la transición a RECEIVED.
type PurchaseOrder struct {
	ID                   string
	Number               string // OC{YYYYMMDD}-{NNN}, único
	SupplierID           string
	UserID               string
	Status               string
	TotalAmount          decimal.Decimal
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PurchaseOrderItem es una línea de orden de compra. QuantityReceived
// acumula recepciones parciales y nunca puede superar QuantityOrdered.
type PurchaseOrderItem struct {
	ID               string
	PurchaseOrderID  string
	ProductID        *string
	Name             string
	QuantityOrdered  int64
	QuantityReceived int64
	UnitCost         decimal.Decimal
	Subtotal         decimal.Decimal
}

// FullyReceived indica si la línea ya se recibió completa.
func (i PurchaseOrderItem) FullyReceived() bool {
	return i.QuantityReceived >= i.QuantityOrdered
}
