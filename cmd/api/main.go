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

	appanalytics "github.com/flowi-app/flowi-api/internal/application/analytics"
	"github.com/flowi-app/flowi-api/internal/application/auth"
	"github.com/flowi-app/flowi-api/internal/application/rates"
	"github.com/flowi-app/flowi-api/internal/application/receivables"
	appsales "github.com/flowi-app/flowi-api/internal/application/sales"
	"github.com/flowi-app/flowi-api/internal/application/usecase"
	infrapdf "github.com/flowi-app/flowi-api/internal/infrastructure/pdf"
	"github.com/flowi-app/flowi-api/internal/infrastructure/postgres"
	httpRouter "github.com/flowi-app/flowi-api/internal/interfaces/http"
	"github.com/flowi-app/flowi-api/pkg/config"
	"github.com/flowi-app/flowi-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	rateRepo := postgres.NewExchangeRateRepository(pool)
	bankRepo := postgres.NewBankAccountRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, rateRepo)
	bankUC := usecase.NewBankAccountUseCase(bankRepo)
	createSaleUC := appsales.NewCreateSaleUseCase(
		txRunner, productRepo, customerRepo, rateRepo, saleRepo, receivableRepo,
	)
	receivablesUC := receivables.NewUseCase(receivableRepo)
	ratesUC := rates.NewUseCase(rateRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, rateRepo)

	// PDF: recibo de venta con totales en ambas monedas
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := appsales.NewReceiptUseCase(saleRepo, customerRepo, receiptGenerator)

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
		Title:    "Flowi Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		BankUC:      bankUC,
		CreateSale:  createSaleUC,
		Receipt:     receiptUC,
		Receivables: receivablesUC,
		Rates:       ratesUC,
		Dashboard:   dashboardUC,
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
