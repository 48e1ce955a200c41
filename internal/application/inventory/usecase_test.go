package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/application/inventory"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledgertest"
	"github.com/tu-usuario/ferreteria-pro/internal/application/returns"
	"github.com/tu-usuario/ferreteria-pro/internal/application/sales"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

const (
	productoID = "00000000-0000-0000-0000-0000000000a1"
	usuarioID  = "00000000-0000-0000-0000-0000000000u1"
)

func nuevaFixture(stock int64) (*ledgertest.Store, *inventory.UseCase) {
	store := ledgertest.NewStore()
	store.SeedProduct(entity.Product{
		ID:           productoID,
		SKU:          "MART-16OZ",
		Name:         "Martillo 16oz",
		SellingPrice: decimal.NewFromInt(25000),
		CurrentStock: stock,
		Active:       true,
	})
	runner := ledgertest.NewRunner(store)
	uc := inventory.NewUseCase(runner, ledgertest.Repos(store).Movements)
	return store, uc
}

func TestRegisterMovement_EntradaManual(t *testing.T) {
	store, uc := nuevaFixture(3)

	out, err := uc.RegisterMovement(context.Background(), usuarioID, dto.RegisterMovementRequest{
		ProductID: productoID,
		Type:      entity.MovementTypeIN,
		Quantity:  5,
		Reason:    "mercancía encontrada en bodega",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.PreviousStock)
	assert.Equal(t, int64(8), out.NewStock)
	assert.Equal(t, int64(8), store.Product(productoID).CurrentStock)
}

func TestRegisterMovement_AjusteNegativo(t *testing.T) {
	store, uc := nuevaFixture(10)

	out, err := uc.RegisterMovement(context.Background(), usuarioID, dto.RegisterMovementRequest{
		ProductID: productoID,
		Type:      entity.MovementTypeADJUSTMENT,
		Quantity:  -4,
		Reason:    "merma por conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), out.NewStock)
	assert.Equal(t, int64(6), store.Product(productoID).CurrentStock)
}

func TestRegisterMovement_TipoReturnNoPermitido(t *testing.T) {
	// Las devoluciones llevan documento propio: aquí solo IN, OUT y ADJUSTMENT
	_, uc := nuevaFixture(10)

	_, err := uc.RegisterMovement(context.Background(), usuarioID, dto.RegisterMovementRequest{
		ProductID: productoID,
		Type:      entity.MovementTypeRETURN,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_Validacion(t *testing.T) {
	store, uc := nuevaFixture(2)

	_, err := uc.RegisterMovement(context.Background(), usuarioID, dto.RegisterMovementRequest{
		Type: entity.MovementTypeIN, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin producto")

	_, err = uc.RegisterMovement(context.Background(), usuarioID, dto.RegisterMovementRequest{
		ProductID: productoID, Type: entity.MovementTypeOUT, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), store.Product(productoID).CurrentStock)
}

// Jornada de mostrador completa sobre el mismo inventario: venta, devolución
// y ajuste comparten el contador y el log, y el piso de cero se respeta en
// cualquiera de los tres caminos.
func TestFlujoDeMostrador_VentaDevolucionYAjuste(t *testing.T) {
	store, invUC := nuevaFixture(10)
	runner := ledgertest.NewRunner(store)
	repos := ledgertest.Repos(store)
	salesUC := sales.NewUseCase(runner, repos.Sales)
	returnsUC := returns.NewUseCase(runner, repos.Returns)

	// Venta de 3: 10 → 7
	id := productoID
	venta, err := salesUC.CreateSale(context.Background(), usuarioID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: &id, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), store.Product(productoID).CurrentStock)

	// Devolución de 2 sobre esa venta: 7 → 9
	_, err = returnsUC.CreateReturn(context.Background(), usuarioID, dto.CreateReturnRequest{
		SaleID: &venta.ID,
		Reason: "cambio de referencia",
		Items: []dto.ReturnItemRequest{
			{ProductID: &id, Name: "Martillo 16oz", Quantity: 2, UnitPrice: decimal.NewFromInt(25000)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(9), store.Product(productoID).CurrentStock)

	// Ajuste de −20: dejaría el contador en negativo, se rechaza entero
	_, err = invUC.RegisterMovement(context.Background(), usuarioID, dto.RegisterMovementRequest{
		ProductID: productoID,
		Type:      entity.MovementTypeADJUSTMENT,
		Quantity:  -20,
		Reason:    "conteo físico",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(9), store.Product(productoID).CurrentStock)

	// El log cuenta solo lo que sí ocurrió y encadena los saldos
	movs := store.Movements()
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementTypeOUT, movs[0].Type)
	assert.Equal(t, venta.Number, movs[0].Reference)
	assert.Equal(t, int64(10), movs[0].PreviousStock)
	assert.Equal(t, int64(7), movs[0].NewStock)
	assert.Equal(t, entity.MovementTypeRETURN, movs[1].Type)
	assert.Equal(t, int64(7), movs[1].PreviousStock)
	assert.Equal(t, int64(9), movs[1].NewStock)
}
