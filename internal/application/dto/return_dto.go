package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnItemRequest línea devuelta.
type ReturnItemRequest struct {
	ProductID *string         `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateReturnRequest cuerpo de POST /api/returns.
type CreateReturnRequest struct {
	SaleID       *string             `json:"sale_id"`
	RefundMethod string              `json:"refund_method"`
	Reason       string              `json:"reason"`
	Items        []ReturnItemRequest `json:"items"`
}

// ReturnItemResponse línea de devolución persistida.
type ReturnItemResponse struct {
	ID        string          `json:"id"`
	ProductID *string         `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ReturnResponse devolución creada con su número generado.
type ReturnResponse struct {
	ID           string               `json:"id"`
	Number       string               `json:"number"`
	SaleID       *string              `json:"sale_id,omitempty"`
	RefundMethod string               `json:"refund_method"`
	Reason       string               `json:"reason"`
	TotalAmount  decimal.Decimal      `json:"total_amount"`
	Status       string               `json:"status"`
	ReturnDate   time.Time            `json:"return_date"`
	Items        []ReturnItemResponse `json:"items"`
}
