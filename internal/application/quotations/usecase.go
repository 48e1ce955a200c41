package quotations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledger"
	"github.com/tu-usuario/ferreteria-pro/internal/application/sales"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/docnumber"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

// UseCase gestiona cotizaciones. No afectan stock hasta que se convierten:
// la conversión crea la venta (con su salida de stock) y marca la
// cotización CONVERTED en la misma transacción.
type UseCase struct {
	txRunner      ledger.TxRunner
	quotationRepo repository.QuotationRepository // lecturas fuera de transacción
	salesUC       *sales.UseCase
}

// NewUseCase construye el caso de uso de cotizaciones.
func NewUseCase(txRunner ledger.TxRunner, quotationRepo repository.QuotationRepository, salesUC *sales.UseCase) *UseCase {
	return &UseCase{txRunner: txRunner, quotationRepo: quotationRepo, salesUC: salesUC}
}

// CreateQuotation crea la cotización en DRAFT con número COT{YYYYMMDD}-{NNN}.
func (uc *UseCase) CreateQuotation(ctx context.Context, userID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var q *entity.Quotation
	var items []*entity.QuotationItem
	err := uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		now := time.Now()
		number, err := ledger.NextNumber(r, docnumber.KindQuotation, now)
		if err != nil {
			return err
		}

		quotationID := uuid.New().String()
		var total decimal.Decimal
		items = items[:0]
		for _, line := range in.Items {
			item := &entity.QuotationItem{
				ID:          uuid.New().String(),
				QuotationID: quotationID,
				ProductID:   line.ProductID,
				Name:        line.Name,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
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
				if item.UnitPrice.IsZero() {
					item.UnitPrice = product.SellingPrice
				}
			}
			item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
			total = total.Add(item.Subtotal)
			items = append(items, item)
		}

		q = &entity.Quotation{
			ID:          quotationID,
			Number:      number,
			CustomerID:  in.CustomerID,
			UserID:      userID,
			Status:      entity.QuotationStatusDraft,
			TotalAmount: total,
			ValidUntil:  in.ValidUntil,
			Notes:       in.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.Quotations.Create(q); err != nil {
			return err
		}
		for _, item := range items {
			if err := r.Quotations.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(q, items), nil
}

// ChangeStatus aplica un cambio de estado manual (SENT, ACCEPTED, REJECTED).
// CONVERTED solo se alcanza vía Convert.
func (uc *UseCase) ChangeStatus(ctx context.Context, id, newStatus string) error {
	switch newStatus {
	case entity.QuotationStatusSent, entity.QuotationStatusAccepted, entity.QuotationStatusRejected:
	default:
		return domain.ErrInvalidTransition
	}
	return uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		q, err := r.Quotations.GetForUpdate(id)
		if err != nil {
			return err
		}
		if q == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransitionQuotation(q.Status, newStatus) {
			return domain.ErrInvalidTransition
		}
		return r.Quotations.UpdateStatus(id, newStatus)
	})
}

// Convert convierte una cotización ACCEPTED en venta: la venta se crea con
// el workflow de ventas (número VEN, líneas y salidas de stock) y la
// cotización queda CONVERTED enlazando la venta, todo en una transacción.
// Si algún producto no tiene stock suficiente, nada se persiste.
func (uc *UseCase) Convert(ctx context.Context, userID, id string, in dto.ConvertQuotationRequest) (*dto.SaleResponse, error) {
	var sale *entity.Sale
	var saleItems []*entity.SaleItem
	err := uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		q, err := r.Quotations.GetForUpdate(id)
		if err != nil {
			return err
		}
		if q == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransitionQuotation(q.Status, entity.QuotationStatusConverted) {
			return domain.ErrInvalidTransition
		}

		items, err := r.Quotations.GetItems(id)
		if err != nil {
			return err
		}
		saleReq := dto.CreateSaleRequest{
			CustomerID:    q.CustomerID,
			PaymentMethod: in.PaymentMethod,
			PaymentStatus: in.PaymentStatus,
			Notes:         "generada desde cotización " + q.Number,
		}
		for _, item := range items {
			saleReq.Items = append(saleReq.Items, dto.SaleItemRequest{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		sale, saleItems, err = uc.salesUC.CreateSaleInTx(r, userID, saleReq, time.Now())
		if err != nil {
			return err
		}
		return r.Quotations.SetConverted(id, sale.ID)
	})
	if err != nil {
		return nil, err
	}
	return sales.ToResponse(sale, saleItems), nil
}

// GetQuotation obtiene una cotización con sus líneas.
func (uc *UseCase) GetQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.quotationRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toResponse(q, items), nil
}

// ListQuotations lista cotizaciones filtrando por estado opcional.
func (uc *UseCase) ListQuotations(ctx context.Context, status string, limit, offset int) ([]*dto.QuotationResponse, error) {
	quotes, err := uc.quotationRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toResponse(q, nil))
	}
	return out, nil
}

func toResponse(q *entity.Quotation, items []*entity.QuotationItem) *dto.QuotationResponse {
	resp := &dto.QuotationResponse{
		ID:          q.ID,
		Number:      q.Number,
		CustomerID:  q.CustomerID,
		Status:      q.Status,
		TotalAmount: q.TotalAmount,
		ValidUntil:  q.ValidUntil,
		SaleID:      q.SaleID,
		Items:       make([]dto.QuotationItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.QuotationItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}
