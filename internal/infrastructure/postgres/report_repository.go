package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo proyecciones de solo lectura sobre PostgreSQL. Corre sobre el
// pool: las consultas no necesitan aislamiento transaccional.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LowStock productos activos con current_stock <= min_stock, stock ascendente.
func (r *ReportRepo) LowStock(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE active = true AND current_stock <= min_stock
		ORDER BY current_stock ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock report: %w", err)
	}
	defer rows.Close()

	products := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Valuation valorización del inventario activo a precio de compra y de venta.
func (r *ReportRepo) Valuation(ctx context.Context) (*repository.StockValuation, error) {
	query := `
		SELECT COALESCE(SUM(current_stock), 0),
		       COALESCE(SUM(current_stock * purchase_price), 0),
		       COALESCE(SUM(current_stock * selling_price), 0)
		FROM products WHERE active = true`
	var v repository.StockValuation
	err := r.q.QueryRow(ctx, query).Scan(&v.TotalUnits, &v.PurchaseValuation, &v.SellingValuation)
	if err != nil {
		return nil, fmt.Errorf("valuation report: %w", err)
	}
	return &v, nil
}

// MovementSummary conteo y cantidad total por tipo, rango de fechas opcional.
func (r *ReportRepo) MovementSummary(ctx context.Context, from, to *time.Time) ([]repository.MovementSummaryRow, error) {
	query := `SELECT type, COUNT(*), COALESCE(SUM(quantity), 0) FROM stock_movements WHERE 1=1`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}
	query += ` GROUP BY type ORDER BY type`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movement summary: %w", err)
	}
	defer rows.Close()

	out := []repository.MovementSummaryRow{}
	for rows.Next() {
		var row repository.MovementSummaryRow
		if err := rows.Scan(&row.Type, &row.MovementCount, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
