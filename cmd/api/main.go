package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/tienda-pro/internal/application/auth"
	"github.com/tu-usuario/tienda-pro/internal/application/billing"
	"github.com/tu-usuario/tienda-pro/internal/application/inventory"
	"github.com/tu-usuario/tienda-pro/internal/application/purchasing"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
	infraai "github.com/tu-usuario/tienda-pro/internal/infrastructure/ai"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/scheduler"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
	httpRouter "github.com/tu-usuario/tienda-pro/internal/interfaces/http"
	"github.com/tu-usuario/tienda-pro/pkg/config"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

// repos agrupa los puertos de persistencia más los runners de transacción,
// para armar el grafo igual en modo PostgreSQL y en modo demo (memoria).
type repos struct {
	profile        repository.ProfileRepository
	product        repository.ProductRepository
	movement       repository.StockMovementRepository
	customer       repository.CustomerRepository
	customerLedger repository.CustomerLedgerRepository
	vendor         repository.VendorRepository
	vendorLedger   repository.VendorLedgerRepository
	invoice        repository.InvoiceRepository
	analytics      repository.AnalyticsRepository

	inventoryTx  inventory.TxRunner
	purchasingTx purchasing.TxRunner
	billingTx    billing.TxRunner
	customerTx   billing.TxRunnerCustomer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	if cfg.DB.InMemory() {
		log.Warn().Msg("sin DATABASE_URL ni DB_HOST: modo demo con almacén en memoria")
		store := memory.NewSeeded()
		txRunner := memory.NewTxRunner(store)
		r = repos{
			profile:        memory.NewProfileRepo(store),
			product:        memory.NewProductRepo(store),
			movement:       memory.NewMovementRepo(store),
			customer:       memory.NewCustomerRepo(store),
			customerLedger: memory.NewCustomerLedgerRepo(store),
			vendor:         memory.NewVendorRepo(store),
			vendorLedger:   memory.NewVendorLedgerRepo(store),
			invoice:        memory.NewInvoiceRepo(store),
			analytics:      memory.NewAnalyticsRepo(store),
			inventoryTx:    txRunner,
			purchasingTx:   txRunner,
			billingTx:      txRunner,
			customerTx:     txRunner,
		}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner := postgres.NewTxRunner(pool)
		r = repos{
			profile:        postgres.NewProfileRepository(pool),
			product:        postgres.NewProductRepository(pool),
			movement:       postgres.NewMovementRepository(pool),
			customer:       postgres.NewCustomerRepository(pool),
			customerLedger: postgres.NewCustomerLedgerRepository(pool),
			vendor:         postgres.NewVendorRepository(pool),
			vendorLedger:   postgres.NewVendorLedgerRepository(pool),
			invoice:        postgres.NewInvoiceRepository(pool),
			analytics:      postgres.NewAnalyticsRepository(pool),
			inventoryTx:    txRunner,
			purchasingTx:   txRunner,
			billingTx:      txRunner,
			customerTx:     txRunner,
		}
	}

	inventoryUC := inventory.NewUseCase(r.inventoryTx, r.product, r.movement, r.vendor)
	vendorUC := purchasing.NewVendorUseCase(r.purchasingTx, r.vendor, r.vendorLedger)
	customerUC := billing.NewCustomerUseCase(r.customerTx, r.customer, r.customerLedger)
	invoiceUC := billing.NewInvoiceUseCase(r.billingTx, inventoryUC, r.invoice)
	profileUC := usecase.NewProfileUseCase(r.profile)
	reportUC := usecase.NewReportUseCase(r.analytics, r.product)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc, reportUC)

	authUC := auth.NewAuthUseCase(r.profile, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	sweeper := scheduler.NewLowStockSweeper(reportUC, log.Component("scheduler"))
	if err := sweeper.Start(cfg.Alerts.LowStockCron); err != nil {
		log.Fatal().Err(err).Msg("programar barrido de stock bajo")
	}
	defer sweeper.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		InventoryUC: inventoryUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		VendorUC:    vendorUC,
		ReportUC:    reportUC,
		AIUC:        aiUC,
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
