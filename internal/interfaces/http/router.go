package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flowi-app/flowi-api/internal/application/analytics"
	"github.com/flowi-app/flowi-api/internal/application/auth"
	"github.com/flowi-app/flowi-api/internal/application/rates"
	"github.com/flowi-app/flowi-api/internal/application/receivables"
	appsales "github.com/flowi-app/flowi-api/internal/application/sales"
	"github.com/flowi-app/flowi-api/internal/application/usecase"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	BankUC      *usecase.BankAccountUseCase
	CreateSale  *appsales.CreateSaleUseCase
	Receipt     *appsales.ReceiptUseCase
	Receivables *receivables.UseCase
	Rates       *rates.UseCase
	Dashboard   *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.Receipt)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.DownloadReceipt)

	// Receivables (protegido). /outstanding va antes de /:id/pay por orden de match.
	recv := protected.Group("/receivables")
	receivableHandler := NewReceivableHandler(deps.Receivables)
	recv.Post("/", receivableHandler.Create)
	recv.Get("/", receivableHandler.List)
	recv.Get("/outstanding", receivableHandler.Outstanding)
	recv.Post("/:id/pay", receivableHandler.MarkPaid)

	// Exchange rate (protegido; solo admin puede fijar la tasa)
	rate := protected.Group("/exchange-rate")
	rateHandler := NewRateHandler(deps.Rates)
	rate.Post("/", RequireRole(entity.RoleAdmin), rateHandler.SetRate)
	rate.Get("/", rateHandler.GetActive)
	rate.Get("/history", rateHandler.History)

	// Bank accounts (protegido)
	banks := protected.Group("/bank-accounts")
	bankHandler := NewBankHandler(deps.BankUC)
	banks.Post("/", bankHandler.Create)
	banks.Get("/", bankHandler.List)
	banks.Get("/:id", bankHandler.GetByID)
	banks.Post("/:id/transactions", bankHandler.RegisterTransaction)
	banks.Get("/:id/transactions", bankHandler.ListTransactions)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
