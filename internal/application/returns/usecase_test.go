package returns_test

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
	"github.com/tu-usuario/ferreteria-pro/internal/application/returns"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

const (
	productoID = "00000000-0000-0000-0000-0000000000a1"
	usuarioID  = "00000000-0000-0000-0000-0000000000u1"
)

func nuevaFixture(stock int64) (*ledgertest.Store, *returns.UseCase) {
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
	uc := returns.NewUseCase(runner, ledgertest.Repos(store).Returns)
	return store, uc
}

func lineaDevolucion(qty int64) dto.ReturnItemRequest {
	id := productoID
	return dto.ReturnItemRequest{ProductID: &id, Name: "Martillo 16oz", Quantity: qty, UnitPrice: decimal.NewFromInt(25000)}
}

func TestCreateReturn_ReingresaStock(t *testing.T) {
	store, uc := nuevaFixture(7)

	out, err := uc.CreateReturn(context.Background(), usuarioID, dto.CreateReturnRequest{
		RefundMethod: entity.RefundMethodCash,
		Reason:       "producto defectuoso",
		Items:        []dto.ReturnItemRequest{lineaDevolucion(2)},
	})
	require.NoError(t, err)

	hoy := time.Now().Format("20060102")
	assert.Equal(t, "DEV"+hoy+"-001", out.Number)
	assert.Equal(t, entity.ReturnStatusActive, out.Status)
	assert.Equal(t, int64(9), store.Product(productoID).CurrentStock)

	movs := store.Movements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeRETURN, movs[0].Type)
	assert.Equal(t, int64(7), movs[0].PreviousStock)
	assert.Equal(t, int64(9), movs[0].NewStock)
}

func TestCreateReturn_VentaReferenciadaDebeExistir(t *testing.T) {
	store, uc := nuevaFixture(7)

	saleID := "venta-inexistente"
	_, err := uc.CreateReturn(context.Background(), usuarioID, dto.CreateReturnRequest{
		SaleID: &saleID,
		Items:  []dto.ReturnItemRequest{lineaDevolucion(1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(7), store.Product(productoID).CurrentStock, "nada persiste")
}

// La cancelación aplica la reversa mediante un movimiento compensatorio
// (queda en el log) y es idempotente: una segunda cancelación no encuentra
// la devolución activa y el stock solo se descuenta una vez.
func TestCancelReturn_RevierteUnaSolaVez(t *testing.T) {
	store, uc := nuevaFixture(7)

	out, err := uc.CreateReturn(context.Background(), usuarioID, dto.CreateReturnRequest{
		Reason: "cliente se arrepintió",
		Items:  []dto.ReturnItemRequest{lineaDevolucion(2)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(9), store.Product(productoID).CurrentStock)

	// Primera cancelación: reversa aplicada, estado CANCELLED
	require.NoError(t, uc.CancelReturn(context.Background(), usuarioID, out.ID))
	assert.Equal(t, int64(7), store.Product(productoID).CurrentStock)
	assert.Equal(t, entity.ReturnStatusCancelled, store.Return(out.ID).Status)

	movs := store.Movements()
	require.Len(t, movs, 2, "reingreso + reversa, ambos auditados")
	assert.Equal(t, entity.MovementTypeOUT, movs[1].Type)
	assert.Equal(t, out.Number, movs[1].Reference)
	assert.Equal(t, "anulación de devolución", movs[1].Reason)

	// Segunda cancelación: ya no hay devolución activa
	err = uc.CancelReturn(context.Background(), usuarioID, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(7), store.Product(productoID).CurrentStock, "el stock no se descuenta dos veces")
	assert.Len(t, store.Movements(), 2, "no hay reversa duplicada")
}

// Si la mercancía devuelta ya salió de bodega, la reversa dejaría el stock
// negativo: la cancelación completa se descarta y la devolución sigue activa.
func TestCancelReturn_SinStockParaLaReversa(t *testing.T) {
	store, uc := nuevaFixture(0)
	runner := ledgertest.NewRunner(store)

	out, err := uc.CreateReturn(context.Background(), usuarioID, dto.CreateReturnRequest{
		Items: []dto.ReturnItemRequest{lineaDevolucion(2)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), store.Product(productoID).CurrentStock)

	// La unidad devuelta vuelve a venderse antes de la cancelación
	err = runner.Run(context.Background(), func(r *ledger.TxRepos) error {
		_, err := ledger.Apply(r, ledger.DeltaInput{
			ProductID: productoID,
			Type:      entity.MovementTypeOUT,
			Quantity:  2,
			Reason:    "venta",
			UserID:    usuarioID,
			Now:       time.Now(),
		})
		return err
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), store.Product(productoID).CurrentStock)

	err = uc.CancelReturn(context.Background(), usuarioID, out.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, entity.ReturnStatusActive, store.Return(out.ID).Status, "la devolución sigue activa")
	assert.Equal(t, int64(0), store.Product(productoID).CurrentStock)
}

func TestCreateReturn_Validacion(t *testing.T) {
	_, uc := nuevaFixture(5)

	_, err := uc.CreateReturn(context.Background(), usuarioID, dto.CreateReturnRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = uc.CreateReturn(context.Background(), usuarioID, dto.CreateReturnRequest{
		Items: []dto.ReturnItemRequest{lineaDevolucion(-1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")
}
