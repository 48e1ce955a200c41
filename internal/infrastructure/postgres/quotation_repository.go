package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador de cotizaciones. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, number, customer_id, user_id, status, total_amount, valid_until, sale_id, notes, created_at, updated_at`

func scanQuotation(row pgx.Row) (*entity.Quotation, error) {
	var q entity.Quotation
	err := row.Scan(
		&q.ID, &q.Number, &q.CustomerID, &q.UserID, &q.Status, &q.TotalAmount,
		&q.ValidUntil, &q.SaleID, &q.Notes, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create persiste la cabecera de cotización.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.Number, q.CustomerID, q.UserID, q.Status, q.TotalAmount,
		q.ValidUntil, q.SaleID, q.Notes, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSequenceCollision
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de cotización.
func (r *QuotationRepo) CreateItem(item *entity.QuotationItem) error {
	query := `
		INSERT INTO quotation_items (id, quotation_id, product_id, name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuotationID, item.ProductID, item.Name, item.Quantity,
		item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert quotation item: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1`
	q, err := scanQuotation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return q, nil
}

// GetForUpdate bloquea la cabecera para transiciones y conversión.
func (r *QuotationRepo) GetForUpdate(id string) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1 FOR UPDATE`
	q, err := scanQuotation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation for update: %w", err)
	}
	return q, nil
}

// GetItems obtiene las líneas de una cotización.
func (r *QuotationRepo) GetItems(quotationID string) ([]*entity.QuotationItem, error) {
	query := `
		SELECT id, quotation_id, product_id, name, quantity, unit_price, subtotal
		FROM quotation_items WHERE quotation_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("get quotation items: %w", err)
	}
	defer rows.Close()

	items := []*entity.QuotationItem{}
	for rows.Next() {
		var i entity.QuotationItem
		if err := rows.Scan(&i.ID, &i.QuotationID, &i.ProductID, &i.Name, &i.Quantity, &i.UnitPrice, &i.Subtotal); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado de la cotización.
func (r *QuotationRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	return nil
}

// SetConverted marca CONVERTED y enlaza la venta generada.
func (r *QuotationRepo) SetConverted(id, saleID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, sale_id = $3, updated_at = now() WHERE id = $1`,
		id, entity.QuotationStatusConverted, saleID)
	if err != nil {
		return fmt.Errorf("set quotation converted: %w", err)
	}
	return nil
}

// List lista cotizaciones, opcionalmente filtradas por estado, más reciente primero.
func (r *QuotationRepo) List(status string, limit, offset int) ([]*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += ` WHERE status = $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	quotations := []*entity.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}
