package dto

import "github.com/shopspring/decimal"

// LowStockItem producto en o por debajo de su umbral mínimo.
type LowStockItem struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	CurrentStock int64  `json:"current_stock"`
	MinStock     int64  `json:"min_stock"`
}

// ValuationResponse valorización del inventario activo.
type ValuationResponse struct {
	TotalUnits        int64           `json:"total_units"`
	PurchaseValuation decimal.Decimal `json:"purchase_valuation"`
	SellingValuation  decimal.Decimal `json:"selling_valuation"`
}

// MovementSummaryRow agregado por tipo de movimiento.
type MovementSummaryRow struct {
	Type          string `json:"type"`
	MovementCount int64  `json:"movement_count"`
	TotalQuantity int64  `json:"total_quantity"`
}
