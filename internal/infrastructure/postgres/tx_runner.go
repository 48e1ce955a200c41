package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledger"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Todo el bundle comparte la misma tx: documento,
// movimientos, stock y consecutivo se confirman o descartan juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(tx *ledger.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := &ledger.TxRepos{
		Products:   NewProductRepository(tx),
		Movements:  NewStockMovementRepository(tx),
		Sales:      NewSaleRepository(tx),
		Returns:    NewReturnRepository(tx),
		Purchases:  NewPurchaseOrderRepository(tx),
		Quotations: NewQuotationRepository(tx),
		Sequences:  NewSequenceRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
