package repository

import (
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del log de movimientos.
// Solo inserta y consulta: las filas son inmutables.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByReference(reference string) ([]*entity.StockMovement, error)
}
