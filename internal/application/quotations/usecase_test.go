package quotations_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledgertest"
	"github.com/tu-usuario/ferreteria-pro/internal/application/quotations"
	"github.com/tu-usuario/ferreteria-pro/internal/application/sales"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

const (
	productoID = "00000000-0000-0000-0000-0000000000a1"
	usuarioID  = "00000000-0000-0000-0000-0000000000u1"
)

func nuevaFixture(stock int64) (*ledgertest.Store, *quotations.UseCase) {
	store := ledgertest.NewStore()
	store.SeedProduct(entity.Product{
		ID:           productoID,
		SKU:          "PINT-GAL",
		Name:         "Pintura blanca galón",
		SellingPrice: decimal.NewFromInt(95000),
		CurrentStock: stock,
		Active:       true,
	})
	runner := ledgertest.NewRunner(store)
	repos := ledgertest.Repos(store)
	salesUC := sales.NewUseCase(runner, repos.Sales)
	uc := quotations.NewUseCase(runner, repos.Quotations, salesUC)
	return store, uc
}

func crearCotizacion(t *testing.T, uc *quotations.UseCase, qty int64) *dto.QuotationResponse {
	t.Helper()
	id := productoID
	out, err := uc.CreateQuotation(context.Background(), usuarioID, dto.CreateQuotationRequest{
		Items: []dto.QuotationItemRequest{{ProductID: &id, Quantity: qty}},
	})
	require.NoError(t, err)
	return out
}

func TestCreateQuotation_NoTocaStock(t *testing.T) {
	store, uc := nuevaFixture(10)

	out := crearCotizacion(t, uc, 3)

	hoy := time.Now().Format("20060102")
	assert.Equal(t, "COT"+hoy+"-001", out.Number)
	assert.Equal(t, entity.QuotationStatusDraft, out.Status)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(285000)), "precio tomado del catálogo")
	assert.Equal(t, int64(10), store.Product(productoID).CurrentStock, "cotizar no reserva stock")
	assert.Empty(t, store.Movements())
}

func TestChangeStatus_SigueLaTabla(t *testing.T) {
	store, uc := nuevaFixture(10)
	out := crearCotizacion(t, uc, 3)

	// DRAFT no puede aceptarse sin pasar por SENT
	err := uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusSent))
	require.NoError(t, uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusAccepted))
	assert.Equal(t, entity.QuotationStatusAccepted, store.Quotation(out.ID).Status)

	// CONVERTED nunca se alcanza por cambio directo
	err = uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusConverted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestConvert_GeneraVentaYDescuentaStock(t *testing.T) {
	store, uc := nuevaFixture(10)
	out := crearCotizacion(t, uc, 3)
	require.NoError(t, uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusSent))
	require.NoError(t, uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusAccepted))

	venta, err := uc.Convert(context.Background(), usuarioID, out.ID, dto.ConvertQuotationRequest{
		PaymentMethod: entity.PaymentMethodCash,
		PaymentStatus: entity.PaymentStatusPaid,
	})
	require.NoError(t, err)

	hoy := time.Now().Format("20060102")
	assert.Equal(t, "VEN"+hoy+"-001", venta.Number, "la venta lleva su propia numeración")
	assert.Equal(t, int64(7), store.Product(productoID).CurrentStock)

	q := store.Quotation(out.ID)
	assert.Equal(t, entity.QuotationStatusConverted, q.Status)
	require.NotNil(t, q.SaleID)
	assert.Equal(t, venta.ID, *q.SaleID, "la cotización enlaza la venta generada")

	movs := store.Movements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeOUT, movs[0].Type)
	assert.Equal(t, venta.Number, movs[0].Reference)
}

func TestConvert_SoloDesdeAccepted(t *testing.T) {
	store, uc := nuevaFixture(10)
	out := crearCotizacion(t, uc, 3)

	_, err := uc.Convert(context.Background(), usuarioID, out.ID, dto.ConvertQuotationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.QuotationStatusDraft, store.Quotation(out.ID).Status)
}

// Sin stock suficiente la conversión completa se descarta: no hay venta,
// no hay movimientos y la cotización sigue ACCEPTED (puede reintentarse).
func TestConvert_SinStockNoDejaRastro(t *testing.T) {
	store, uc := nuevaFixture(2)
	out := crearCotizacion(t, uc, 5)
	require.NoError(t, uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusSent))
	require.NoError(t, uc.ChangeStatus(context.Background(), out.ID, entity.QuotationStatusAccepted))

	_, err := uc.Convert(context.Background(), usuarioID, out.ID, dto.ConvertQuotationRequest{})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 0, store.SaleCount())
	assert.Empty(t, store.Movements())
	assert.Equal(t, int64(2), store.Product(productoID).CurrentStock)
	assert.Equal(t, entity.QuotationStatusAccepted, store.Quotation(out.ID).Status)
}
