package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ferreteria-pro/internal/application/auth"
	"github.com/tu-usuario/ferreteria-pro/internal/application/inventory"
	"github.com/tu-usuario/ferreteria-pro/internal/application/parties"
	"github.com/tu-usuario/ferreteria-pro/internal/application/products"
	"github.com/tu-usuario/ferreteria-pro/internal/application/purchasing"
	"github.com/tu-usuario/ferreteria-pro/internal/application/quotations"
	"github.com/tu-usuario/ferreteria-pro/internal/application/reports"
	"github.com/tu-usuario/ferreteria-pro/internal/application/returns"
	"github.com/tu-usuario/ferreteria-pro/internal/application/sales"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *products.UseCase
	InventoryUC *inventory.UseCase
	SalesUC     *sales.UseCase
	ReturnsUC   *returns.UseCase
	PurchaseUC  *purchasing.UseCase
	QuotationUC *quotations.UseCase
	PartyUC     *parties.UseCase
	ReportsUC   *reports.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. RBAC: bodeguero opera inventario y
// compras, vendedor opera ventas, devoluciones y cotizaciones; admin todo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	warehouse := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	counter := RequireRole(entity.RoleAdmin, entity.RoleVendedor)

	// Products: lectura para todos los autenticados; escritura de bodega
	productHandler := NewProductHandler(deps.ProductUC)
	prods := protected.Group("/products")
	prods.Get("/", productHandler.List)
	prods.Get("/:id", productHandler.GetByID)
	prods.Post("/", warehouse, productHandler.Create)
	prods.Put("/:id", warehouse, productHandler.Update)

	// Inventory: movimientos manuales e historial
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory", warehouse)
	inv.Post("/movements", inventoryHandler.RegisterMovement)
	inv.Get("/movements/:productId", inventoryHandler.ListByProduct)

	// Sales (mostrador)
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup := protected.Group("/sales", counter)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Returns
	returnHandler := NewReturnHandler(deps.ReturnsUC)
	returnsGroup := protected.Group("/returns", counter)
	returnsGroup.Post("/", returnHandler.Create)
	returnsGroup.Get("/", returnHandler.List)
	returnsGroup.Get("/:id", returnHandler.GetByID)
	returnsGroup.Post("/:id/cancel", returnHandler.Cancel)

	// Purchase orders
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	pos := protected.Group("/purchase-orders", warehouse)
	pos.Post("/", purchaseHandler.Create)
	pos.Get("/", purchaseHandler.List)
	pos.Get("/:id", purchaseHandler.GetByID)
	pos.Patch("/:id/status", purchaseHandler.ChangeStatus)
	pos.Post("/:id/receive", purchaseHandler.Receive)

	// Quotations
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotes := protected.Group("/quotations", counter)
	quotes.Post("/", quotationHandler.Create)
	quotes.Get("/", quotationHandler.List)
	quotes.Get("/:id", quotationHandler.GetByID)
	quotes.Patch("/:id/status", quotationHandler.ChangeStatus)
	quotes.Post("/:id/convert", quotationHandler.Convert)

	// Customers y suppliers
	partyHandler := NewPartyHandler(deps.PartyUC)
	customers := protected.Group("/customers", counter)
	customers.Post("/", partyHandler.CreateCustomer)
	customers.Get("/", partyHandler.ListCustomers)
	customers.Get("/:id", partyHandler.GetCustomer)

	suppliers := protected.Group("/suppliers", warehouse)
	suppliers.Post("/", partyHandler.CreateSupplier)
	suppliers.Get("/", partyHandler.ListSuppliers)
	suppliers.Get("/:id", partyHandler.GetSupplier)

	// Reports (solo lectura)
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	reportsGroup.Get("/valuation", reportHandler.Valuation)
	reportsGroup.Get("/movements", reportHandler.MovementSummary)
}
