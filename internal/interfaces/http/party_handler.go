package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/application/parties"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
)

// PartyHandler maneja clientes y proveedores (protegido).
type PartyHandler struct {
	uc *parties.UseCase
}

// NewPartyHandler construye el handler.
func NewPartyHandler(uc *parties.UseCase) *PartyHandler {
	return &PartyHandler{uc: uc}
}

// CreateCustomer da de alta un cliente.
// POST /api/customers
func (h *PartyHandler) CreateCustomer(c *fiber.Ctx) error {
	var in parties.CreatePartyInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCustomer(c.Context(), in)
	if err != nil {
		return partyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCustomer obtiene un cliente por ID.
// GET /api/customers/:id
func (h *PartyHandler) GetCustomer(c *fiber.Ctx) error {
	out, err := h.uc.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return partyError(c, err)
	}
	return c.JSON(out)
}

// ListCustomers lista clientes.
// GET /api/customers
func (h *PartyHandler) ListCustomers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListCustomers(c.Context(), limit, offset)
	if err != nil {
		return partyError(c, err)
	}
	return c.JSON(out)
}

// CreateSupplier da de alta un proveedor.
// POST /api/suppliers
func (h *PartyHandler) CreateSupplier(c *fiber.Ctx) error {
	var in parties.CreatePartyInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSupplier(c.Context(), in)
	if err != nil {
		return partyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSupplier obtiene un proveedor por ID.
// GET /api/suppliers/:id
func (h *PartyHandler) GetSupplier(c *fiber.Ctx) error {
	out, err := h.uc.GetSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return partyError(c, err)
	}
	return c.JSON(out)
}

// ListSuppliers lista proveedores.
// GET /api/suppliers
func (h *PartyHandler) ListSuppliers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListSuppliers(c.Context(), limit, offset)
	if err != nil {
		return partyError(c, err)
	}
	return c.JSON(out)
}

func partyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "documento ya registrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
