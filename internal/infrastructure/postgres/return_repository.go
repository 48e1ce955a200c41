package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación del puerto ReturnRepository sobre PostgreSQL.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador de devoluciones. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

const returnColumns = `id, number, sale_id, user_id, refund_method, reason, total_amount, status, return_date, created_at`

func scanReturn(row pgx.Row) (*entity.Return, error) {
	var ret entity.Return
	err := row.Scan(
		&ret.ID, &ret.Number, &ret.SaleID, &ret.UserID, &ret.RefundMethod,
		&ret.Reason, &ret.TotalAmount, &ret.Status, &ret.ReturnDate, &ret.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

// Create persiste la cabecera de devolución.
func (r *ReturnRepo) Create(ret *entity.Return) error {
	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.Number, ret.SaleID, ret.UserID, ret.RefundMethod,
		ret.Reason, ret.TotalAmount, ret.Status, ret.ReturnDate, ret.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSequenceCollision
		}
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de devolución.
func (r *ReturnRepo) CreateItem(item *entity.ReturnItem) error {
	query := `
		INSERT INTO return_items (id, return_id, product_id, name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ReturnID, item.ProductID, item.Name, item.Quantity,
		item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert return item: %w", err)
	}
	return nil
}

// GetByID obtiene una devolución por ID.
func (r *ReturnRepo) GetByID(id string) (*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`
	ret, err := scanReturn(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	return ret, nil
}

// GetItems obtiene las líneas de una devolución.
func (r *ReturnRepo) GetItems(returnID string) ([]*entity.ReturnItem, error) {
	query := `
		SELECT id, return_id, product_id, name, quantity, unit_price, subtotal
		FROM return_items WHERE return_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, returnID)
	if err != nil {
		return nil, fmt.Errorf("get return items: %w", err)
	}
	defer rows.Close()

	items := []*entity.ReturnItem{}
	for rows.Next() {
		var i entity.ReturnItem
		if err := rows.Scan(&i.ID, &i.ReturnID, &i.ProductID, &i.Name, &i.Quantity, &i.UnitPrice, &i.Subtotal); err != nil {
			return nil, fmt.Errorf("scan return item: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// GetActiveForUpdate bloquea la devolución solo si sigue ACTIVE. El filtro en
// SQL hace la cancelación idempotente: una segunda cancelación no encuentra fila.
func (r *ReturnRepo) GetActiveForUpdate(id string) (*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1 AND status = 'ACTIVE' FOR UPDATE`
	ret, err := scanReturn(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return for update: %w", err)
	}
	return ret, nil
}

// UpdateStatus cambia el estado de la devolución.
func (r *ReturnRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE returns SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update return status: %w", err)
	}
	return nil
}

// List lista devoluciones por rango de fecha, más reciente primero.
func (r *ReturnRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE 1=1`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND return_date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND return_date <= $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY return_date DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()

	returns := []*entity.Return{}
	for rows.Next() {
		ret, err := scanReturn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		returns = append(returns, ret)
	}
	return returns, rows.Err()
}
