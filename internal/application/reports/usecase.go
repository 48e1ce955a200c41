package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

// UseCase proyecciones de solo lectura sobre el stock y el log de
// movimientos. Nunca mutan estado.
type UseCase struct {
	reportRepo repository.ReportRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo}
}

// LowStock productos activos en o por debajo de su mínimo, stock ascendente.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.LowStockItem, error) {
	products, err := uc.reportRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockItem{
			ProductID:    p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
		})
	}
	return out, nil
}

// Valuation valorización del inventario activo a precio de compra y de venta.
func (uc *UseCase) Valuation(ctx context.Context) (*dto.ValuationResponse, error) {
	v, err := uc.reportRepo.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ValuationResponse{
		TotalUnits:        v.TotalUnits,
		PurchaseValuation: v.PurchaseValuation,
		SellingValuation:  v.SellingValuation,
	}, nil
}

// MovementSummary conteo y cantidad total por tipo, rango de fechas opcional.
func (uc *UseCase) MovementSummary(ctx context.Context, from, to *time.Time) ([]dto.MovementSummaryRow, error) {
	rows, err := uc.reportRepo.MovementSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementSummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.MovementSummaryRow{
			Type:          row.Type,
			MovementCount: row.MovementCount,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return out, nil
}
