package products

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

// CreateProductInput alta de producto. El stock inicial no se acepta aquí:
// las existencias entran por movimiento IN o recepción de orden de compra,
// para que el contador siempre cuadre con el log.
type CreateProductInput struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *string         `json:"category_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStock      int64           `json:"min_stock"`
	Unit          string          `json:"unit"`
}

// UseCase CRUD de catálogo. No toca current_stock: eso es del ledger.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// Create da de alta un producto con stock en cero.
func (uc *UseCase) Create(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.LessThan(decimal.Zero) || in.SellingPrice.LessThan(decimal.Zero) || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		CurrentStock:  0,
		MinStock:      in.MinStock,
		Unit:          in.Unit,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get obtiene un producto por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista el catálogo (solo activos si activeOnly).
func (uc *UseCase) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(activeOnly, limit, offset)
}

// UpdateProductInput campos editables del catálogo. CurrentStock queda fuera
// a propósito.
type UpdateProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *string         `json:"category_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStock      int64           `json:"min_stock"`
	Unit          string          `json:"unit"`
	Active        *bool           `json:"active"`
}

// Update modifica los datos de catálogo de un producto.
func (uc *UseCase) Update(ctx context.Context, id string, in UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if !in.PurchasePrice.IsZero() {
		product.PurchasePrice = in.PurchasePrice
	}
	if !in.SellingPrice.IsZero() {
		product.SellingPrice = in.SellingPrice
	}
	if in.MinStock >= 0 {
		product.MinStock = in.MinStock
	}
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
