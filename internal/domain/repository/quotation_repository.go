package repository

import "github.com/tu-usuario/ferreteria-pro/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para cotizaciones.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	CreateItem(item *entity.QuotationItem) error
	GetByID(id string) (*entity.Quotation, error)
	// GetForUpdate bloquea la cabecera para transiciones y conversión.
	GetForUpdate(id string) (*entity.Quotation, error)
	GetItems(quotationID string) ([]*entity.QuotationItem, error)
	UpdateStatus(id, status string) error
	// SetConverted marca CONVERTED y enlaza la venta generada.
	SetConverted(id, saleID string) error
	List(status string, limit, offset int) ([]*entity.Quotation, error)
}
