package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationItemRequest línea de cotización entrante.
type QuotationItemRequest struct {
	ProductID *string         `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateQuotationRequest cuerpo de POST /api/quotations.
type CreateQuotationRequest struct {
	CustomerID *string                `json:"customer_id"`
	ValidUntil *time.Time             `json:"valid_until"`
	Notes      string                 `json:"notes"`
	Items      []QuotationItemRequest `json:"items"`
}

// ConvertQuotationRequest datos de pago para la venta generada al convertir.
type ConvertQuotationRequest struct {
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
}

// QuotationItemResponse línea de cotización persistida.
type QuotationItemResponse struct {
	ID        string          `json:"id"`
	ProductID *string         `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// QuotationResponse cotización con sus líneas.
type QuotationResponse struct {
	ID          string                  `json:"id"`
	Number      string                  `json:"number"`
	CustomerID  *string                 `json:"customer_id,omitempty"`
	Status      string                  `json:"status"`
	TotalAmount decimal.Decimal         `json:"total_amount"`
	ValidUntil  *time.Time              `json:"valid_until,omitempty"`
	SaleID      *string                 `json:"sale_id,omitempty"`
	Items       []QuotationItemResponse `json:"items"`
}
