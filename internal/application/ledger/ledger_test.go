package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pro/internal/application/ledger"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledgertest"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

const (
	productoID = "00000000-0000-0000-0000-0000000000aa"
	usuarioID  = "00000000-0000-0000-0000-0000000000bb"
)

func nuevoStore(stock int64) *ledgertest.Store {
	store := ledgertest.NewStore()
	store.SeedProduct(entity.Product{
		ID:           productoID,
		SKU:          "MART-16OZ",
		Name:         "Martillo 16oz",
		CurrentStock: stock,
		MinStock:     2,
		Active:       true,
	})
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Convención de signos
// ──────────────────────────────────────────────────────────────────────────────

func TestSignedQuantity_Convencion(t *testing.T) {
	casos := []struct {
		tipo     string
		cantidad int64
		esperado int64
	}{
		{entity.MovementTypeIN, 5, 5},
		{entity.MovementTypeRETURN, 3, 3},
		{entity.MovementTypeOUT, 4, -4},
		{entity.MovementTypeADJUSTMENT, 7, 7},
		{entity.MovementTypeADJUSTMENT, -7, -7},
	}
	for _, tc := range casos {
		got, err := ledger.SignedQuantity(tc.tipo, tc.cantidad)
		require.NoError(t, err, "%s %d", tc.tipo, tc.cantidad)
		assert.Equal(t, tc.esperado, got, "%s %d", tc.tipo, tc.cantidad)
	}
}

func TestSignedQuantity_EntradasInvalidas(t *testing.T) {
	invalidos := []struct {
		tipo     string
		cantidad int64
	}{
		{entity.MovementTypeIN, 0},
		{entity.MovementTypeIN, -1},
		{entity.MovementTypeOUT, 0},
		{entity.MovementTypeOUT, -3},
		{entity.MovementTypeRETURN, -2},
		{entity.MovementTypeADJUSTMENT, 0}, // ajuste de cero no dice nada
		{"TRANSFER", 1},                    // tipo desconocido
	}
	for _, tc := range invalidos {
		_, err := ledger.SignedQuantity(tc.tipo, tc.cantidad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s %d", tc.tipo, tc.cantidad)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply: contador + movimiento en la misma unidad
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SalidaActualizaContadorYLog(t *testing.T) {
	store := nuevoStore(10)
	runner := ledgertest.NewRunner(store)

	err := runner.Run(context.Background(), func(r *ledger.TxRepos) error {
		_, err := ledger.Apply(r, ledger.DeltaInput{
			ProductID: productoID,
			Type:      entity.MovementTypeOUT,
			Quantity:  3,
			Reference: "VEN20240115-001",
			Reason:    "venta",
			UserID:    usuarioID,
			Now:       time.Now(),
		})
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), store.Product(productoID).CurrentStock)

	movs := store.Movements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeOUT, movs[0].Type)
	assert.Equal(t, int64(3), movs[0].Quantity, "la magnitud se guarda sin signo")
	assert.Equal(t, int64(10), movs[0].PreviousStock)
	assert.Equal(t, int64(7), movs[0].NewStock)
	assert.Equal(t, "VEN20240115-001", movs[0].Reference)
}

func TestApply_StockInsuficienteNoDejaRastro(t *testing.T) {
	store := nuevoStore(10)
	runner := ledgertest.NewRunner(store)

	err := runner.Run(context.Background(), func(r *ledger.TxRepos) error {
		_, err := ledger.Apply(r, ledger.DeltaInput{
			ProductID: productoID,
			Type:      entity.MovementTypeOUT,
			Quantity:  11,
			UserID:    usuarioID,
			Now:       time.Now(),
		})
		return err
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), store.Product(productoID).CurrentStock, "el contador no cambia")
	assert.Empty(t, store.Movements(), "no queda movimiento del intento fallido")
}

func TestApply_AjusteNegativoRespetaElPiso(t *testing.T) {
	store := nuevoStore(9)
	runner := ledgertest.NewRunner(store)

	err := runner.Run(context.Background(), func(r *ledger.TxRepos) error {
		_, err := ledger.Apply(r, ledger.DeltaInput{
			ProductID: productoID,
			Type:      entity.MovementTypeADJUSTMENT,
			Quantity:  -20,
			Reason:    "conteo físico",
			UserID:    usuarioID,
			Now:       time.Now(),
		})
		return err
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(9), store.Product(productoID).CurrentStock)
}

func TestApply_ProductoInexistente(t *testing.T) {
	store := ledgertest.NewStore()
	runner := ledgertest.NewRunner(store)

	err := runner.Run(context.Background(), func(r *ledger.TxRepos) error {
		_, err := ledger.Apply(r, ledger.DeltaInput{
			ProductID: "no-existe",
			Type:      entity.MovementTypeIN,
			Quantity:  1,
			UserID:    usuarioID,
			Now:       time.Now(),
		})
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// NextNumber: contador por tipo y por día
// ──────────────────────────────────────────────────────────────────────────────

func TestNextNumber_ConsecutivoPorTipoYDia(t *testing.T) {
	store := ledgertest.NewStore()
	runner := ledgertest.NewRunner(store)

	dia1 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	dia2 := dia1.AddDate(0, 0, 1)

	var n1, n2, n3, dev string
	err := runner.Run(context.Background(), func(r *ledger.TxRepos) error {
		var err error
		if n1, err = ledger.NextNumber(r, "sale", dia1); err != nil {
			return err
		}
		if n2, err = ledger.NextNumber(r, "sale", dia1); err != nil {
			return err
		}
		// Otro tipo el mismo día no comparte contador
		if dev, err = ledger.NextNumber(r, "return", dia1); err != nil {
			return err
		}
		// Día siguiente: el consecutivo reinicia en 001
		n3, err = ledger.NextNumber(r, "sale", dia2)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "VEN20240115-001", n1)
	assert.Equal(t, "VEN20240115-002", n2)
	assert.Equal(t, "DEV20240115-001", dev)
	assert.Equal(t, "VEN20240116-001", n3)
}
