package parties

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

// CreatePartyInput alta de cliente o proveedor.
type CreatePartyInput struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UseCase altas y consultas de clientes y proveedores.
type UseCase struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewUseCase construye el caso de uso de terceros.
func NewUseCase(customerRepo repository.CustomerRepository, supplierRepo repository.SupplierRepository) *UseCase {
	return &UseCase{customerRepo: customerRepo, supplierRepo: supplierRepo}
}

// CreateCustomer da de alta un cliente.
func (uc *UseCase) CreateCustomer(ctx context.Context, in CreatePartyInput) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer obtiene un cliente por ID.
func (uc *UseCase) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// ListCustomers lista clientes con paginación.
func (uc *UseCase) ListCustomers(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	return uc.customerRepo.List(limit, offset)
}

// CreateSupplier da de alta un proveedor.
func (uc *UseCase) CreateSupplier(ctx context.Context, in CreatePartyInput) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier obtiene un proveedor por ID.
func (uc *UseCase) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// ListSuppliers lista proveedores con paginación.
func (uc *UseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(limit, offset)
}
