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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const poColumns = `id, number, supplier_id, user_id, status, total_amount, order_date, expected_delivery_date, actual_delivery_date, notes, created_at, updated_at`

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.Number, &po.SupplierID, &po.UserID, &po.Status, &po.TotalAmount,
		&po.OrderDate, &po.ExpectedDeliveryDate, &po.ActualDeliveryDate, &po.Notes,
		&po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// Create persiste la cabecera de orden de compra.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.Number, po.SupplierID, po.UserID, po.Status, po.TotalAmount,
		po.OrderDate, po.ExpectedDeliveryDate, po.ActualDeliveryDate, po.Notes,
		po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSequenceCollision
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de orden de compra.
func (r *PurchaseOrderRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, purchase_order_id, product_id, name, quantity_ordered, quantity_received, unit_cost, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseOrderID, item.ProductID, item.Name,
		item.QuantityOrdered, item.QuantityReceived, item.UnitCost, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	po, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return po, nil
}

// GetForUpdate bloquea la cabecera para recepciones y cambios de estado.
func (r *PurchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	po, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order for update: %w", err)
	}
	return po, nil
}

// GetItems obtiene las líneas de una orden.
func (r *PurchaseOrderRepo) GetItems(poID string) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, purchase_order_id, product_id, name, quantity_ordered, quantity_received, unit_cost, subtotal
		FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("get purchase order items: %w", err)
	}
	defer rows.Close()

	items := []*entity.PurchaseOrderItem{}
	for rows.Next() {
		var i entity.PurchaseOrderItem
		if err := rows.Scan(&i.ID, &i.PurchaseOrderID, &i.ProductID, &i.Name,
			&i.QuantityOrdered, &i.QuantityReceived, &i.UnitCost, &i.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// UpdateItemReceived acumula la cantidad recibida de una línea.
func (r *PurchaseOrderRepo) UpdateItemReceived(itemID string, quantityReceived int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_order_items SET quantity_received = $2 WHERE id = $1`,
		itemID, quantityReceived,
	)
	if err != nil {
		return fmt.Errorf("update item received: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado; actualDelivery solo se escribe al pasar a RECEIVED.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string, actualDelivery *time.Time) error {
	var err error
	if actualDelivery != nil {
		_, err = r.q.Exec(context.Background(),
			`UPDATE purchase_orders SET status = $2, actual_delivery_date = $3, updated_at = now() WHERE id = $1`,
			id, status, *actualDelivery,
		)
	} else {
		_, err = r.q.Exec(context.Background(),
			`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`,
			id, status,
		)
	}
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// List lista órdenes, opcionalmente filtradas por estado, más reciente primero.
func (r *PurchaseOrderRepo) List(status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += ` WHERE status = $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY order_date DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []*entity.PurchaseOrder{}
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}
