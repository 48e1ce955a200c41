package ledgertest

import (
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// Los repos falsos operan sin locks: dentro de Run trabajan sobre un clon
// privado, y en fixtures los tests son secuenciales.

// ─────────────────────────────────────────────────────────────
// Productos
// ─────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(product *entity.Product) error {
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *productRepo) Update(product *entity.Product) error {
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *productRepo) List(activeOnly bool, limit, offset int) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range r.s.products {
		if activeOnly && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// GetForUpdate en memoria no bloquea nada: el clon ya aísla la transacción.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) UpdateStock(productID string, newStock int64) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	p.UpdatedAt = time.Now()
	return nil
}

// ─────────────────────────────────────────────────────────────
// Movimientos de stock
// ─────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(movement *entity.StockMovement) error {
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *movementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *movementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	out := []*entity.StockMovement{}
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.ProductID != productID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *movementRepo) ListByReference(reference string) ([]*entity.StockMovement, error) {
	out := []*entity.StockMovement{}
	for _, m := range r.s.movements {
		if m.Reference == reference {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────
// Ventas
// ─────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.Sale) error {
	for _, existing := range r.s.sales {
		if existing.Number == sale.Number {
			return domain.ErrSequenceCollision
		}
	}
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *saleRepo) CreateItem(item *entity.SaleItem) error {
	cp := *item
	r.s.saleItems[item.SaleID] = append(r.s.saleItems[item.SaleID], &cp)
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *saleRepo) GetByNumber(number string) (*entity.Sale, error) {
	for _, sale := range r.s.sales {
		if sale.Number == number {
			cp := *sale
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *saleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	out := []*entity.SaleItem{}
	for _, item := range r.s.saleItems[saleID] {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *saleRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, sale := range r.s.sales {
		if from != nil && sale.SaleDate.Before(*from) {
			continue
		}
		if to != nil && sale.SaleDate.After(*to) {
			continue
		}
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────
// Devoluciones
// ─────────────────────────────────────────────────────────────

type returnRepo struct{ s *Store }

func (r *returnRepo) Create(ret *entity.Return) error {
	for _, existing := range r.s.returns {
		if existing.Number == ret.Number {
			return domain.ErrSequenceCollision
		}
	}
	cp := *ret
	r.s.returns[ret.ID] = &cp
	return nil
}

func (r *returnRepo) CreateItem(item *entity.ReturnItem) error {
	cp := *item
	r.s.returnItems[item.ReturnID] = append(r.s.returnItems[item.ReturnID], &cp)
	return nil
}

func (r *returnRepo) GetByID(id string) (*entity.Return, error) {
	ret, ok := r.s.returns[id]
	if !ok {
		return nil, nil
	}
	cp := *ret
	return &cp, nil
}

func (r *returnRepo) GetItems(returnID string) ([]*entity.ReturnItem, error) {
	out := []*entity.ReturnItem{}
	for _, item := range r.s.returnItems[returnID] {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *returnRepo) GetActiveForUpdate(id string) (*entity.Return, error) {
	ret, ok := r.s.returns[id]
	if !ok || ret.Status != entity.ReturnStatusActive {
		return nil, nil
	}
	cp := *ret
	return &cp, nil
}

func (r *returnRepo) UpdateStatus(id, status string) error {
	ret, ok := r.s.returns[id]
	if !ok {
		return domain.ErrNotFound
	}
	ret.Status = status
	return nil
}

func (r *returnRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Return, error) {
	out := []*entity.Return{}
	for _, ret := range r.s.returns {
		if from != nil && ret.ReturnDate.Before(*from) {
			continue
		}
		if to != nil && ret.ReturnDate.After(*to) {
			continue
		}
		cp := *ret
		out = append(out, &cp)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────
// Órdenes de compra
// ─────────────────────────────────────────────────────────────

type purchaseOrderRepo struct{ s *Store }

func (r *purchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	for _, existing := range r.s.purchaseOrders {
		if existing.Number == po.Number {
			return domain.ErrSequenceCollision
		}
	}
	cp := *po
	r.s.purchaseOrders[po.ID] = &cp
	return nil
}

func (r *purchaseOrderRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	cp := *item
	r.s.poItems[item.PurchaseOrderID] = append(r.s.poItems[item.PurchaseOrderID], &cp)
	return nil
}

func (r *purchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	po, ok := r.s.purchaseOrders[id]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

func (r *purchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}

func (r *purchaseOrderRepo) GetItems(poID string) ([]*entity.PurchaseOrderItem, error) {
	out := []*entity.PurchaseOrderItem{}
	for _, item := range r.s.poItems[poID] {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *purchaseOrderRepo) UpdateItemReceived(itemID string, quantityReceived int64) error {
	for _, items := range r.s.poItems {
		for _, item := range items {
			if item.ID == itemID {
				item.QuantityReceived = quantityReceived
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (r *purchaseOrderRepo) UpdateStatus(id, status string, actualDelivery *time.Time) error {
	po, ok := r.s.purchaseOrders[id]
	if !ok {
		return domain.ErrNotFound
	}
	po.Status = status
	if actualDelivery != nil {
		po.ActualDeliveryDate = actualDelivery
	}
	po.UpdatedAt = time.Now()
	return nil
}

func (r *purchaseOrderRepo) List(status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	out := []*entity.PurchaseOrder{}
	for _, po := range r.s.purchaseOrders {
		if status != "" && po.Status != status {
			continue
		}
		cp := *po
		out = append(out, &cp)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────
// Cotizaciones
// ─────────────────────────────────────────────────────────────

type quotationRepo struct{ s *Store }

func (r *quotationRepo) Create(q *entity.Quotation) error {
	for _, existing := range r.s.quotations {
		if existing.Number == q.Number {
			return domain.ErrSequenceCollision
		}
	}
	cp := *q
	r.s.quotations[q.ID] = &cp
	return nil
}

func (r *quotationRepo) CreateItem(item *entity.QuotationItem) error {
	cp := *item
	r.s.quotationItems[item.QuotationID] = append(r.s.quotationItems[item.QuotationID], &cp)
	return nil
}

func (r *quotationRepo) GetByID(id string) (*entity.Quotation, error) {
	q, ok := r.s.quotations[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *quotationRepo) GetForUpdate(id string) (*entity.Quotation, error) {
	return r.GetByID(id)
}

func (r *quotationRepo) GetItems(quotationID string) ([]*entity.QuotationItem, error) {
	out := []*entity.QuotationItem{}
	for _, item := range r.s.quotationItems[quotationID] {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *quotationRepo) UpdateStatus(id, status string) error {
	q, ok := r.s.quotations[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = status
	q.UpdatedAt = time.Now()
	return nil
}

func (r *quotationRepo) SetConverted(id, saleID string) error {
	q, ok := r.s.quotations[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = entity.QuotationStatusConverted
	q.SaleID = &saleID
	q.UpdatedAt = time.Now()
	return nil
}

func (r *quotationRepo) List(status string, limit, offset int) ([]*entity.Quotation, error) {
	out := []*entity.Quotation{}
	for _, q := range r.s.quotations {
		if status != "" && q.Status != status {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}
