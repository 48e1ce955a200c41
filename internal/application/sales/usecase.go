package sales

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

// UseCase crea ventas de forma transaccional: número generado, cabecera,
// líneas y salidas de stock confirman o se descartan juntos.
type UseCase struct {
	txRunner ledger.TxRunner
	saleRepo repository.SaleRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(txRunner ledger.TxRunner, saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo}
}

func validate(in dto.CreateSaleRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	if in.Discount.LessThan(decimal.Zero) || in.Tax.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// CreateSale abre la unidad de trabajo y delega en CreateSaleInTx.
// Ante cualquier error (producto inexistente, stock insuficiente) no queda
// persistida ni la cabecera, ni las líneas, ni los movimientos.
func (uc *UseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var sale *entity.Sale
	var items []*entity.SaleItem
	err := uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		var err error
		sale, items, err = uc.CreateSaleInTx(r, userID, in, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToResponse(sale, items), nil
}

// CreateSaleInTx ejecuta la creación usando los repositorios del caller
// (misma transacción). Lo usa también la conversión de cotizaciones para
// generar la venta dentro de su propia unidad de trabajo.
func (uc *UseCase) CreateSaleInTx(r *ledger.TxRepos, userID string, in dto.CreateSaleRequest, now time.Time) (*entity.Sale, []*entity.SaleItem, error) {
	if err := validate(in); err != nil {
		return nil, nil, err
	}

	// Número VEN{YYYYMMDD}-{NNN} con el contador atómico del día
	number, err := ledger.NextNumber(r, docnumber.KindSale, now)
	if err != nil {
		return nil, nil, err
	}

	saleID := uuid.New().String()

	// Resolver productos y completar precio/nombre por línea
	var total decimal.Decimal
	items := make([]*entity.SaleItem, 0, len(in.Items))
	for _, line := range in.Items {
		item := &entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		if line.ProductID != nil {
			product, err := r.Products.GetByID(*line.ProductID)
			if err != nil {
				return nil, nil, err
			}
			if product == nil {
				return nil, nil, domain.ErrNotFound
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

	sale := &entity.Sale{
		ID:            saleID,
		Number:        number,
		CustomerID:    in.CustomerID,
		UserID:        userID,
		TotalAmount:   total,
		Discount:      in.Discount,
		Tax:           in.Tax,
		NetAmount:     total.Sub(in.Discount).Add(in.Tax),
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
		Notes:         in.Notes,
		SaleDate:      now,
		CreatedAt:     now,
	}
	if err := r.Sales.Create(sale); err != nil {
		return nil, nil, err
	}
	for _, item := range items {
		if err := r.Sales.CreateItem(item); err != nil {
			return nil, nil, err
		}
	}

	// Salida de stock por cada línea con producto. Si alguna dejaría el
	// stock negativo, todo el documento se descarta.
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		if _, err := ledger.Apply(r, ledger.DeltaInput{
			ProductID: *item.ProductID,
			Type:      entity.MovementTypeOUT,
			Quantity:  item.Quantity,
			Reference: number,
			Reason:    "venta",
			UserID:    userID,
			SaleID:    &saleID,
			Now:       now,
		}); err != nil {
			return nil, nil, err
		}
	}

	return sale, items, nil
}

// GetSale obtiene una venta con sus líneas.
func (uc *UseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return ToResponse(sale, items), nil
}

// ListSales lista ventas en un rango de fechas opcional.
func (uc *UseCase) ListSales(ctx context.Context, from, to *time.Time, limit, offset int) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToResponse(s, nil))
	}
	return out, nil
}

// ToResponse arma la respuesta de una venta con sus líneas.
func ToResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		Number:        sale.Number,
		CustomerID:    sale.CustomerID,
		TotalAmount:   sale.TotalAmount,
		Discount:      sale.Discount,
		Tax:           sale.Tax,
		NetAmount:     sale.NetAmount,
		PaymentMethod: sale.PaymentMethod,
		PaymentStatus: sale.PaymentStatus,
		SaleDate:      sale.SaleDate,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
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
