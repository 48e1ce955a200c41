package repository

import "github.com/tu-usuario/ferreteria-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock existen solo para el ledger: ningún workflow
// debe escribir current_stock directamente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(activeOnly bool, limit, offset int) ([]*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock escribe el nuevo contador de stock. Uso exclusivo del ledger.
	UpdateStock(productID string, newStock int64) error
}
