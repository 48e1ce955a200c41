package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de orden de compra entrante.
type PurchaseOrderItemRequest struct {
	ProductID *string         `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest cuerpo de POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierID           string                     `json:"supplier_id"`
	ExpectedDeliveryDate *time.Time                 `json:"expected_delivery_date"`
	Notes                string                     `json:"notes"`
	Items                []PurchaseOrderItemRequest `json:"items"`
}

// ReceiveLineRequest recepción parcial o total de una línea.
type ReceiveLineRequest struct {
	ItemID           string `json:"item_id"`
	QuantityReceived int64  `json:"quantity_received"`
}

// ReceivePurchaseOrderRequest cuerpo de POST /api/purchase-orders/:id/receive.
type ReceivePurchaseOrderRequest struct {
	Lines []ReceiveLineRequest `json:"lines"`
}

// UpdateStatusRequest cambio de estado explícito (órdenes y cotizaciones).
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PurchaseOrderItemResponse línea persistida con el acumulado recibido.
type PurchaseOrderItemResponse struct {
	ID               string          `json:"id"`
	ProductID        *string         `json:"product_id,omitempty"`
	Name             string          `json:"name"`
	QuantityOrdered  int64           `json:"quantity_ordered"`
	QuantityReceived int64           `json:"quantity_received"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// PurchaseOrderResponse orden de compra con sus líneas.
type PurchaseOrderResponse struct {
	ID                   string                      `json:"id"`
	Number               string                      `json:"number"`
	SupplierID           string                      `json:"supplier_id"`
	Status               string                      `json:"status"`
	TotalAmount          decimal.Decimal             `json:"total_amount"`
	OrderDate            time.Time                   `json:"order_date"`
	ExpectedDeliveryDate *time.Time                  `json:"expected_delivery_date,omitempty"`
	ActualDeliveryDate   *time.Time                  `json:"actual_delivery_date,omitempty"`
	Items                []PurchaseOrderItemResponse `json:"items"`
}
