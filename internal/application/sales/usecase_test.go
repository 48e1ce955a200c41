package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledger"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledgertest"
	"github.com/tu-usuario/ferreteria-pro/internal/application/sales"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

const (
	martilloID = "00000000-0000-0000-0000-0000000000a1"
	taladroID  = "00000000-0000-0000-0000-0000000000a2"
	usuarioID  = "00000000-0000-0000-0000-0000000000u1"
)

func nuevaFixture() (*ledgertest.Store, *sales.UseCase) {
	store := ledgertest.NewStore()
	store.SeedProduct(entity.Product{
		ID:           martilloID,
		SKU:          "MART-16OZ",
		Name:         "Martillo 16oz",
		SellingPrice: decimal.NewFromInt(25000),
		CurrentStock: 10,
		Active:       true,
	})
	store.SeedProduct(entity.Product{
		ID:           taladroID,
		SKU:          "TAL-750W",
		Name:         "Taladro 750W",
		SellingPrice: decimal.NewFromInt(320000),
		CurrentStock: 1,
		Active:       true,
	})
	runner := ledgertest.NewRunner(store)
	uc := sales.NewUseCase(runner, ledgertest.Repos(store).Sales)
	return store, uc
}

func lineaVenta(productID string, qty int64) dto.SaleItemRequest {
	id := productID
	return dto.SaleItemRequest{ProductID: &id, Quantity: qty}
}

func TestCreateSale_DescuentaStockYNumera(t *testing.T) {
	store, uc := nuevaFixture()

	out, err := uc.CreateSale(context.Background(), usuarioID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodCash,
		PaymentStatus: entity.PaymentStatusPaid,
		Items:         []dto.SaleItemRequest{lineaVenta(martilloID, 3)},
	})
	require.NoError(t, err)

	hoy := time.Now().Format("20060102")
	assert.Equal(t, "VEN"+hoy+"-001", out.Number)
	assert.Equal(t, int64(7), store.Product(martilloID).CurrentStock)

	// Precio y nombre se toman del catálogo cuando la línea no los trae
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Martillo 16oz", out.Items[0].Name)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(25000)))
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(75000)))

	// El movimiento queda ligado al documento
	movs := store.Movements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeOUT, movs[0].Type)
	assert.Equal(t, out.Number, movs[0].Reference)
	assert.Equal(t, int64(10), movs[0].PreviousStock)
	assert.Equal(t, int64(7), movs[0].NewStock)
}

// La venta es todo-o-nada: si la segunda línea no tiene stock, no quedan
// cabecera, líneas ni movimientos, y la primera línea no descuenta nada.
func TestCreateSale_AtomicidadAnteStockInsuficiente(t *testing.T) {
	store, uc := nuevaFixture()

	_, err := uc.CreateSale(context.Background(), usuarioID, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodCash,
		PaymentStatus: entity.PaymentStatusPaid,
		Items: []dto.SaleItemRequest{
			lineaVenta(martilloID, 2),
			lineaVenta(taladroID, 5), // solo hay 1
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 0, store.SaleCount(), "no queda cabecera")
	assert.Equal(t, 0, store.SaleItemCount(), "no quedan líneas")
	assert.Empty(t, store.Movements(), "no quedan movimientos")
	assert.Equal(t, int64(10), store.Product(martilloID).CurrentStock)
	assert.Equal(t, int64(1), store.Product(taladroID).CurrentStock)
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	store, uc := nuevaFixture()

	_, err := uc.CreateSale(context.Background(), usuarioID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{lineaVenta("no-existe", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, store.SaleCount())
}

func TestCreateSale_Validacion(t *testing.T) {
	_, uc := nuevaFixture()

	_, err := uc.CreateSale(context.Background(), usuarioID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = uc.CreateSale(context.Background(), usuarioID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{lineaVenta(martilloID, 0)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")
}

// La numeración es consecutiva dentro del día y reinicia al día siguiente.
func TestCreateSale_NumeracionPorDia(t *testing.T) {
	store, uc := nuevaFixture()
	runner := ledgertest.NewRunner(store)

	dia1 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	dia2 := dia1.AddDate(0, 0, 1)

	venta := func(now time.Time) string {
		var number string
		err := runner.Run(context.Background(), func(r *ledger.TxRepos) error {
			sale, _, err := uc.CreateSaleInTx(r, usuarioID, dto.CreateSaleRequest{
				Items: []dto.SaleItemRequest{lineaVenta(martilloID, 1)},
			}, now)
			if err != nil {
				return err
			}
			number = sale.Number
			return nil
		})
		require.NoError(t, err)
		return number
	}

	assert.Equal(t, "VEN20240115-001", venta(dia1))
	assert.Equal(t, "VEN20240115-002", venta(dia1))
	assert.Equal(t, "VEN20240116-001", venta(dia2))
}

// Línea libre (sin producto): entra al documento pero no toca stock.
func TestCreateSale_LineaLibreNoAfectaStock(t *testing.T) {
	store, uc := nuevaFixture()

	out, err := uc.CreateSale(context.Background(), usuarioID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Name: "Servicio corte de madera", Quantity: 1, UnitPrice: decimal.NewFromInt(8000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(8000)))
	assert.Empty(t, store.Movements(), "una línea sin producto no genera movimiento")
}
