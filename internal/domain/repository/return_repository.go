package repository

import (
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// ReturnRepository define el puerto de persistencia para devoluciones.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	CreateItem(item *entity.ReturnItem) error
	GetByID(id string) (*entity.Return, error)
	GetItems(returnID string) ([]*entity.ReturnItem, error)
	// GetActiveForUpdate bloquea la devolución solo si sigue ACTIVE; nil si no
	// existe o ya está cancelada (guardia de idempotencia de la cancelación).
	GetActiveForUpdate(id string) (*entity.Return, error)
	UpdateStatus(id, status string) error
	List(from, to *time.Time, limit, offset int) ([]*entity.Return, error)
}
