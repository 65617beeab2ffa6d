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

	"github.com/jhoicas/Tributo-api/internal/application/auth"
	"github.com/jhoicas/Tributo-api/internal/application/fiscal"
	"github.com/jhoicas/Tributo-api/internal/application/ports"
	"github.com/jhoicas/Tributo-api/internal/application/purchases"
	"github.com/jhoicas/Tributo-api/internal/application/trade"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
	infralookup "github.com/jhoicas/Tributo-api/internal/infrastructure/lookup"
	"github.com/jhoicas/Tributo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tributo-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Tributo-api/internal/interfaces/http"
	"github.com/jhoicas/Tributo-api/pkg/config"
	"github.com/jhoicas/Tributo-api/pkg/logger"
)

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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	trxRepo := postgres.NewTransactionRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	wholesaleRepo := postgres.NewWholesaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	intermediaryRepo := postgres.NewIntermediaryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	configRepo := postgres.NewConfigRepository(pool)
	tradeTx := postgres.NewTradeTxRunner(pool)
	purchaseTx := postgres.NewPurchaseTxRunner(pool)

	// Almacén de sustentos: S3 en producción, disco local para desarrollo.
	var docStore ports.DocumentStore
	if cfg.Storage.Driver == "s3" {
		docStore, err = storage.NewS3Store(cfg.Storage)
	} else {
		docStore, err = storage.NewLocalStore(cfg.Storage.LocalDir)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("almacén de sustentos")
	}

	identityLookup := infralookup.NewHTTPLookup(cfg.Lookup)

	transferUC := trade.NewTransferUseCase(tradeTx, productRepo, trxRepo, intermediaryRepo, configRepo)
	saleUC := trade.NewSaleUseCase(tradeTx, productRepo, trxRepo, configRepo)
	ledgerUC := trade.NewLedgerUseCase(trxRepo)
	ruc10UC := purchases.NewRuc10UseCase(purchaseTx, purchaseRepo, productRepo, intermediaryRepo)
	wholesaleUC := purchases.NewWholesaleUseCase(purchaseTx, wholesaleRepo, productRepo, trxRepo, supplierRepo)
	expenseUC := purchases.NewExpenseUseCase(expenseRepo)
	fiscalUC := fiscal.NewFiscalUseCase(trxRepo, configRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	settingsUC := usecase.NewSettingsUseCase(configRepo)
	intermediaryUC := usecase.NewIntermediaryUseCase(intermediaryRepo, productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, configRepo)
	lookupUC := usecase.NewLookupUseCase(identityLookup)
	authUC := auth.NewAuthUseCase(employeeRepo, configRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Tributo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		TransferUC:     transferUC,
		SaleUC:         saleUC,
		LedgerUC:       ledgerUC,
		Ruc10UC:        ruc10UC,
		WholesaleUC:    wholesaleUC,
		ExpenseUC:      expenseUC,
		FiscalUC:       fiscalUC,
		SettingsUC:     settingsUC,
		IntermediaryUC: intermediaryUC,
		SupplierUC:     supplierUC,
		EmployeeUC:     employeeUC,
		LookupUC:       lookupUC,
		Documents:      docStore,
		Roles:          configRepo,
		JWTSecret:      cfg.JWT.Secret,
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
