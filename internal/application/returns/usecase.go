package returns

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

// UseCase crea y cancela devoluciones de cliente. La creación suma stock
// (tipo RETURN, nunca falla por stock insuficiente); la cancelación aplica
// la reversa a través del ledger para no perder la pista de auditoría.
type UseCase struct {
	txRunner   ledger.TxRunner
	returnRepo repository.ReturnRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso de devoluciones.
func NewUseCase(txRunner ledger.TxRunner, returnRepo repository.ReturnRepository) *UseCase {
	return &UseCase{txRunner: txRunner, returnRepo: returnRepo}
}

// CreateReturn crea la devolución: número DEV{YYYYMMDD}-{NNN}, cabecera,
// líneas y un movimiento RETURN por cada línea con producto, todo en una
// transacción.
func (uc *UseCase) CreateReturn(ctx context.Context, userID string, in dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var ret *entity.Return
	var items []*entity.ReturnItem
	err := uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		now := time.Now()

		// La venta de origen es opcional (devolución sin ticket), pero si
		// viene referenciada debe existir.
		if in.SaleID != nil {
			sale, err := r.Sales.GetByID(*in.SaleID)
			if err != nil {
				return err
			}
			if sale == nil {
				return domain.ErrNotFound
			}
		}

		number, err := ledger.NextNumber(r, docnumber.KindReturn, now)
		if err != nil {
			return err
		}

		returnID := uuid.New().String()
		var total decimal.Decimal
		items = items[:0]
		for _, line := range in.Items {
			item := &entity.ReturnItem{
				ID:        uuid.New().String(),
				ReturnID:  returnID,
				ProductID: line.ProductID,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Subtotal:  line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)),
			}
			total = total.Add(item.Subtotal)
			items = append(items, item)
		}

		ret = &entity.Return{
			ID:           returnID,
			Number:       number,
			SaleID:       in.SaleID,
			UserID:       userID,
			RefundMethod: in.RefundMethod,
			Reason:       in.Reason,
			TotalAmount:  total,
			Status:       entity.ReturnStatusActive,
			ReturnDate:   now,
			CreatedAt:    now,
		}
		if err := r.Returns.Create(ret); err != nil {
			return err
		}
		for _, item := range items {
			if err := r.Returns.CreateItem(item); err != nil {
				return err
			}
		}

		// Reingreso de stock por cada línea con producto
		for _, item := range items {
			if item.ProductID == nil {
				continue
			}
			if _, err := ledger.Apply(r, ledger.DeltaInput{
				ProductID: *item.ProductID,
				Type:      entity.MovementTypeRETURN,
				Quantity:  item.Quantity,
				Reference: number,
				Reason:    in.Reason,
				UserID:    userID,
				SaleID:    in.SaleID,
				Now:       now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(ret, items), nil
}

// CancelReturn cancela una devolución activa: aplica la salida compensatoria
// por cada línea a través del ledger (queda movimiento de reversa en el log)
// y marca la devolución CANCELLED. Cancelar una devolución inexistente o ya
// cancelada devuelve ErrNotFound; el stock se descuenta exactamente una vez.
func (uc *UseCase) CancelReturn(ctx context.Context, userID, id string) error {
	return uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		ret, err := r.Returns.GetActiveForUpdate(id)
		if err != nil {
			return err
		}
		if ret == nil {
			return domain.ErrNotFound
		}
		items, err := r.Returns.GetItems(id)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, item := range items {
			if item.ProductID == nil {
				continue
			}
			// Si la reversa dejaría stock negativo, toda la cancelación
			// se descarta y la devolución sigue activa.
			if _, err := ledger.Apply(r, ledger.DeltaInput{
				ProductID: *item.ProductID,
				Type:      entity.MovementTypeOUT,
				Quantity:  item.Quantity,
				Reference: ret.Number,
				Reason:    "anulación de devolución",
				UserID:    userID,
				SaleID:    ret.SaleID,
				Now:       now,
			}); err != nil {
				return err
			}
		}
		return r.Returns.UpdateStatus(id, entity.ReturnStatusCancelled)
	})
}

// GetReturn obtiene una devolución con sus líneas.
func (uc *UseCase) GetReturn(ctx context.Context, id string) (*dto.ReturnResponse, error) {
	ret, err := uc.returnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.returnRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toResponse(ret, items), nil
}

// ListReturns lista devoluciones en un rango de fechas opcional.
func (uc *UseCase) ListReturns(ctx context.Context, from, to *time.Time, limit, offset int) ([]*dto.ReturnResponse, error) {
	rets, err := uc.returnRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReturnResponse, 0, len(rets))
	for _, ret := range rets {
		out = append(out, toResponse(ret, nil))
	}
	return out, nil
}

func toResponse(ret *entity.Return, items []*entity.ReturnItem) *dto.ReturnResponse {
	resp := &dto.ReturnResponse{
		ID:           ret.ID,
		Number:       ret.Number,
		SaleID:       ret.SaleID,
		RefundMethod: ret.RefundMethod,
		Reason:       ret.Reason,
		TotalAmount:  ret.TotalAmount,
		Status:       ret.Status,
		ReturnDate:   ret.ReturnDate,
		Items:        make([]dto.ReturnItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.ReturnItemResponse{
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
