package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledger"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/docnumber"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

// UseCase gestiona órdenes de compra: creación, máquina de estados explícita
// y recepción de mercancía con entrada de stock vía ledger.
type UseCase struct {
	txRunner     ledger.TxRunner
	poRepo       repository.PurchaseOrderRepository // lecturas fuera de transacción
	supplierRepo repository.SupplierRepository
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(txRunner ledger.TxRunner, poRepo repository.PurchaseOrderRepository, supplierRepo repository.SupplierRepository) *UseCase {
	return &UseCase{txRunner: txRunner, poRepo: poRepo, supplierRepo: supplierRepo}
}

// CreatePurchaseOrder crea la orden en DRAFT con número OC{YYYYMMDD}-{NNN}.
// No toca stock: las existencias entran solo al recibir.
func (uc *UseCase) CreatePurchaseOrder(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validación de proveedor fuera de la tx (solo lectura)
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	var po *entity.PurchaseOrder
	var items []*entity.PurchaseOrderItem
	err = uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		now := time.Now()
		number, err := ledger.NextNumber(r, docnumber.KindPurchaseOrder, now)
		if err != nil {
			return err
		}

		poID := uuid.New().String()
		var total decimal.Decimal
		items = items[:0]
		for _, line := range in.Items {
			item := &entity.PurchaseOrderItem{
				ID:              uuid.New().String(),
				PurchaseOrderID: poID,
				ProductID:       line.ProductID,
				Name:            line.Name,
				QuantityOrdered: line.Quantity,
				UnitCost:        line.UnitCost,
				Subtotal:        line.UnitCost.Mul(decimal.NewFromInt(line.Quantity)),
			}
			if line.ProductID != nil {
				product, err := r.Products.GetByID(*line.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				if item.Name == "" {
					item.Name = product.Name
				}
			}
			total = total.Add(item.Subtotal)
			items = append(items, item)
		}

		po = &entity.PurchaseOrder{
			ID:                   poID,
			Number:               number,
			SupplierID:           in.SupplierID,
			UserID:               userID,
			Status:               entity.POStatusDraft,
			TotalAmount:          total,
			OrderDate:            now,
			ExpectedDeliveryDate: in.ExpectedDeliveryDate,
			Notes:                in.Notes,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := r.Purchases.Create(po); err != nil {
			return err
		}
		for _, item := range items {
			if err := r.Purchases.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(po, items), nil
}

// ChangeStatus aplica un cambio de estado manual (SENT, CANCELLED).
// PARTIAL y RECEIVED solo se alcanzan vía Receive; cualquier transición
// fuera de la tabla se rechaza con ErrInvalidTransition.
func (uc *UseCase) ChangeStatus(ctx context.Context, id, newStatus string) error {
	if newStatus != entity.POStatusSent && newStatus != entity.POStatusCancelled {
		return domain.ErrInvalidTransition
	}
	return uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		po, err := r.Purchases.GetForUpdate(id)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransitionPO(po.Status, newStatus) {
			return domain.ErrInvalidTransition
		}
		return r.Purchases.UpdateStatus(id, newStatus, nil)
	})
}

// Receive registra mercancía recibida contra líneas de la orden: valida que
// ninguna línea supere lo ordenado (ErrOverReceipt), acumula lo recibido,
// genera una entrada IN por cada línea con producto y recalcula el estado:
// RECEIVED si todas las líneas quedaron completas, PARTIAL si alguna tiene
// recepción, sin cambio en caso contrario. ActualDeliveryDate se fija solo
// en la transición a RECEIVED. Todo o nada.
func (uc *UseCase) Receive(ctx context.Context, userID, id string, in dto.ReceivePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var po *entity.PurchaseOrder
	var items []*entity.PurchaseOrderItem
	err := uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		var err error
		po, err = r.Purchases.GetForUpdate(id)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.ErrNotFound
		}
		if po.Status != entity.POStatusSent && po.Status != entity.POStatusPartial {
			return domain.ErrInvalidTransition
		}

		items, err = r.Purchases.GetItems(id)
		if err != nil {
			return err
		}
		byID := make(map[string]*entity.PurchaseOrderItem, len(items))
		for _, item := range items {
			byID[item.ID] = item
		}

		now := time.Now()
		for _, line := range in.Lines {
			item, ok := byID[line.ItemID]
			if !ok {
				return domain.ErrNotFound
			}
			if line.QuantityReceived <= 0 {
				return domain.ErrInvalidInput
			}
			newReceived := item.QuantityReceived + line.QuantityReceived
			if newReceived > item.QuantityOrdered {
				return domain.ErrOverReceipt
			}
			if err := r.Purchases.UpdateItemReceived(item.ID, newReceived); err != nil {
				return err
			}
			item.QuantityReceived = newReceived

			if item.ProductID != nil {
				if _, err := ledger.Apply(r, ledger.DeltaInput{
					ProductID: *item.ProductID,
					Type:      entity.MovementTypeIN,
					Quantity:  line.QuantityReceived,
					Reference: po.Number,
					Reason:    "recepción orden de compra",
					UserID:    userID,
					Now:       now,
				}); err != nil {
					return err
				}
			}
		}

		// Recalcular estado con todas las líneas ya actualizadas
		allReceived := true
		anyReceived := false
		for _, item := range items {
			if !item.FullyReceived() {
				allReceived = false
			}
			if item.QuantityReceived > 0 {
				anyReceived = true
			}
		}
		switch {
		case allReceived:
			po.Status = entity.POStatusReceived
			po.ActualDeliveryDate = &now
			return r.Purchases.UpdateStatus(id, entity.POStatusReceived, &now)
		case anyReceived:
			po.Status = entity.POStatusPartial
			return r.Purchases.UpdateStatus(id, entity.POStatusPartial, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(po, items), nil
}

// GetPurchaseOrder obtiene una orden con sus líneas.
func (uc *UseCase) GetPurchaseOrder(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.poRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toResponse(po, items), nil
}

// ListPurchaseOrders lista órdenes filtrando por estado opcional.
func (uc *UseCase) ListPurchaseOrders(ctx context.Context, status string, limit, offset int) ([]*dto.PurchaseOrderResponse, error) {
	orders, err := uc.poRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseOrderResponse, 0, len(orders))
	for _, po := range orders {
		out = append(out, toResponse(po, nil))
	}
	return out, nil
}

func toResponse(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:                   po.ID,
		Number:               po.Number,
		SupplierID:           po.SupplierID,
		Status:               po.Status,
		TotalAmount:          po.TotalAmount,
		OrderDate:            po.OrderDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		ActualDeliveryDate:   po.ActualDeliveryDate,
		Items:                make([]dto.PurchaseOrderItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			Name:             item.Name,
			QuantityOrdered:  item.QuantityOrdered,
			QuantityReceived: item.QuantityReceived,
			UnitCost:         item.UnitCost,
			Subtotal:         item.Subtotal,
		})
	}
	return resp
}
