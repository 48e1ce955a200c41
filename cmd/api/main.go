package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/ferreteria-pro/internal/application/auth"
	"github.com/tu-usuario/ferreteria-pro/internal/application/inventory"
	"github.com/tu-usuario/ferreteria-pro/internal/application/parties"
	"github.com/tu-usuario/ferreteria-pro/internal/application/products"
	"github.com/tu-usuario/ferreteria-pro/internal/application/purchasing"
	"github.com/tu-usuario/ferreteria-pro/internal/application/quotations"
	"github.com/tu-usuario/ferreteria-pro/internal/application/reports"
	"github.com/tu-usuario/ferreteria-pro/internal/application/returns"
	"github.com/tu-usuario/ferreteria-pro/internal/application/sales"
	"github.com/tu-usuario/ferreteria-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ferreteria-pro/internal/interfaces/http"
	"github.com/tu-usuario/ferreteria-pro/pkg/config"
	"github.com/tu-usuario/ferreteria-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos sobre el pool (lecturas y operaciones de una sola sentencia).
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	// Los workflows que mutan stock corren dentro del TxRunner.
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := products.NewUseCase(productRepo)
	inventoryUC := inventory.NewUseCase(txRunner, movementRepo)
	salesUC := sales.NewUseCase(txRunner, saleRepo)
	returnsUC := returns.NewUseCase(txRunner, returnRepo)
	purchaseUC := purchasing.NewUseCase(txRunner, poRepo, supplierRepo)
	quotationUC := quotations.NewUseCase(txRunner, quotationRepo, salesUC)
	partyUC := parties.NewUseCase(customerRepo, supplierRepo)
	reportsUC := reports.NewUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		ReturnsUC:   returnsUC,
		PurchaseUC:  purchaseUC,
		QuotationUC: quotationUC,
		PartyUC:     partyUC,
		ReportsUC:   reportsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
