package ledger

import (
	"context"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
// Los workflows reciben este bundle dentro de TxRunner.Run y todo lo que
// hagan con él se confirma o se descarta como una unidad.
type TxRepos struct {
	Products   repository.ProductRepository
	Movements  repository.StockMovementRepository
	Sales      repository.SaleRepository
	Returns    repository.ReturnRepository
	Purchases  repository.PurchaseOrderRepository
	Quotations repository.QuotationRepository
	Sequences  repository.SequenceRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Si fn retorna error se hace Rollback; si no, Commit.
// Garantiza la atomicidad de los workflows de documentos y del ledger.
type TxRunner interface {
	Run(ctx context.Context, fn func(r *TxRepos) error) error
}
