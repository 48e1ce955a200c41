package repository

import (
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseOrderItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la cabecera para recepciones y cambios de estado.
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	GetItems(poID string) ([]*entity.PurchaseOrderItem, error)
	UpdateItemReceived(itemID string, quantityReceived int64) error
	// UpdateStatus cambia el estado; actualDelivery solo se escribe al pasar a RECEIVED.
	UpdateStatus(id, status string, actualDelivery *time.Time) error
	List(status string, limit, offset int) ([]*entity.PurchaseOrder, error)
}
