package repository

import (
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetByNumber(number string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
}
