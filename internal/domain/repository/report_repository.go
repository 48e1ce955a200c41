package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// StockValuation resultado de la valorización del inventario sobre productos activos.
type StockValuation struct {
	TotalUnits        int64
	PurchaseValuation decimal.Decimal // Σ(current_stock × purchase_price)
	SellingValuation  decimal.Decimal // Σ(current_stock × selling_price)
}

// MovementSummaryRow conteo y cantidad total por tipo de movimiento.
type MovementSummaryRow struct {
	Type          string
	MovementCount int64
	TotalQuantity int64
}

// ReportRepository consultas de solo lectura sobre el estado actual y el log
// de movimientos. Nunca mutan; no requieren aislamiento transaccional.
type ReportRepository interface {
	// LowStock lista productos activos con current_stock <= min_stock,
	// ordenados por stock ascendente.
	LowStock(ctx context.Context) ([]*entity.Product, error)
	Valuation(ctx context.Context) (*StockValuation, error)
	MovementSummary(ctx context.Context, from, to *time.Time) ([]MovementSummaryRow, error)
}
