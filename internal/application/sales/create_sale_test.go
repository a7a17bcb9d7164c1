package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	appsales "github.com/flowi-app/flowi-api/internal/application/sales"
	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error)    { return nil, nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)    { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                { return nil }
func (f *fakeProductRepo) Delete(string) error                         { return nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	updated   []*entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByTaxID(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error)   { return nil, nil }
func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	f.updated = append(f.updated, c)
	return nil
}
func (f *fakeCustomerRepo) Delete(string) error { return nil }

type fakeRateRepo struct {
	active *entity.ExchangeRate
}

func (f *fakeRateRepo) Create(*entity.ExchangeRate) error { return nil }
func (f *fakeRateRepo) GetActive() (*entity.ExchangeRate, error) {
	return f.active, nil
}
func (f *fakeRateRepo) DeactivateAll() error                           { return nil }
func (f *fakeRateRepo) ListHistory(int, int) ([]*entity.ExchangeRate, error) { return nil, nil }

type fakeSaleRepo struct {
	sales []*entity.Sale
	items []*entity.SaleItem
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	f.sales = append(f.sales, s)
	return nil
}
func (f *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	f.items = append(f.items, it)
	return nil
}
func (f *fakeSaleRepo) GetByID(string) (*entity.Sale, error)          { return nil, nil }
func (f *fakeSaleRepo) GetItemsBySaleID(string) ([]entity.SaleItem, error) { return nil, nil }
func (f *fakeSaleRepo) List(int, int) ([]*entity.Sale, error)         { return nil, nil }

type fakeReceivableRepo struct {
	created     []*entity.Receivable
	outstanding []*entity.Receivable
}

func (f *fakeReceivableRepo) Create(r *entity.Receivable) error {
	f.created = append(f.created, r)
	return nil
}
func (f *fakeReceivableRepo) GetByID(string) (*entity.Receivable, error) { return nil, nil }
func (f *fakeReceivableRepo) List(string, string, int, int) ([]*entity.Receivable, error) {
	return nil, nil
}
func (f *fakeReceivableRepo) ListOutstanding(string) ([]*entity.Receivable, error) {
	return f.outstanding, nil
}
func (f *fakeReceivableRepo) UpdateStatus(*entity.Receivable) error { return nil }

// fakeTxRunner ejecuta el callback directamente con los fakes (sin transacción real).
type fakeTxRunner struct {
	saleRepo       *fakeSaleRepo
	receivableRepo *fakeReceivableRepo
	customerRepo   *fakeCustomerRepo
}

func (f *fakeTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	receivableRepo repository.ReceivableRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(f.saleRepo, f.receivableRepo, f.customerRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type testEnv struct {
	uc             *appsales.CreateSaleUseCase
	saleRepo       *fakeSaleRepo
	receivableRepo *fakeReceivableRepo
	customerRepo   *fakeCustomerRepo
}

func newTestEnv() *testEnv {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Harina PAN", PriceUSD: dec("2.50")},
		"p2": {ID: "p2", Name: "Café molido", PriceUSD: dec("7.25")},
	}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"c1": {
			ID: "c1", Name: "Bodega El Sol", TotalPoints: 480,
			CustomerLevel: entity.LevelBronze, CreditLimit: dec("100"),
		},
	}}
	rateRepo := &fakeRateRepo{active: &entity.ExchangeRate{USDToVES: dec("36.50"), IsActive: true}}
	saleRepo := &fakeSaleRepo{}
	receivableRepo := &fakeReceivableRepo{}
	txRunner := &fakeTxRunner{saleRepo: saleRepo, receivableRepo: receivableRepo, customerRepo: customerRepo}

	uc := appsales.NewCreateSaleUseCase(txRunner, productRepo, customerRepo, rateRepo, saleRepo, receivableRepo)
	return &testEnv{uc: uc, saleRepo: saleRepo, receivableRepo: receivableRepo, customerRepo: customerRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Venta simple en USD con la tasa activa: congela totales en ambas monedas.
func TestCreateSale_USDConTasaActiva(t *testing.T) {
	env := newTestEnv()

	out, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodUSD,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 4}},
	})
	require.NoError(t, err)

	assert.True(t, dec("10.00").Equal(out.TotalUSD), "4 × 2.50 = 10.00 USD")
	assert.True(t, dec("365.00").Equal(out.TotalVES), "10.00 × 36.50 = 365.00 VES")
	assert.True(t, dec("36.50").Equal(out.RateUsed))
	require.Len(t, env.saleRepo.sales, 1)
	require.Len(t, env.saleRepo.items, 1)
	assert.True(t, dec("91.25").Equal(env.saleRepo.items[0].PriceVES),
		"el precio VES queda congelado por ítem (2.50 × 36.50)")
}

// Pago mixto con excedente: el vuelto se entrega en USD.
func TestCreateSale_MixtoConVuelto(t *testing.T) {
	env := newTestEnv()

	out, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodMixed,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 4}},
		PaymentDetails: &dto.MixedPaymentRequest{
			PaidUSD: dec("10.00"),
			PaidVES: dec("182.50"), // 5 USD extra a la tasa
		},
	})
	require.NoError(t, err)
	assert.True(t, dec("5.00").Equal(out.ChangeUSD), "el excedente vuelve en USD")
}

// Pago mixto insuficiente: rechazado sin persistir nada.
func TestCreateSale_MixtoInsuficiente(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodMixed,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 4}},
		PaymentDetails: &dto.MixedPaymentRequest{
			PaidUSD: dec("5.00"),
			PaidVES: dec("100.00"),
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	assert.Empty(t, env.saleRepo.sales, "una venta rechazada no se persiste")
}

// Venta a crédito: genera la cuenta por cobrar en la misma transacción,
// enlazada a la venta y en la moneda del método de pago.
func TestCreateSale_CreditoGeneraCuentaPorCobrar(t *testing.T) {
	env := newTestEnv()

	out, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodVES,
		CustomerID:    "c1",
		OnCredit:      true,
		PaymentTerms:  15,
		Items:         []dto.SaleItemRequest{{ProductID: "p2", Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, env.receivableRepo.created, 1)
	rec := env.receivableRepo.created[0]
	assert.Equal(t, entity.EntityTypeCustomer, rec.EntityType)
	assert.Equal(t, "Bodega El Sol", rec.EntityName)
	assert.Equal(t, entity.CurrencyVES, rec.Currency, "venta en VES → deuda en VES")
	assert.True(t, out.TotalVES.Equal(rec.Amount))
	assert.Equal(t, out.ID, rec.SaleID)
	assert.Equal(t, entity.ReceivableStatusPending, rec.Status)
	assert.Equal(t, 15, rec.PaymentTerms)
}

// Venta a crédito que supera el límite: rechazada.
func TestCreateSale_CreditoSuperaLimite(t *testing.T) {
	env := newTestEnv()
	// El cliente ya debe 95 USD con límite de 100
	env.receivableRepo.outstanding = []*entity.Receivable{{
		EntityType: entity.EntityTypeCustomer, EntityName: "Bodega El Sol",
		Amount: dec("95.00"), Currency: entity.CurrencyUSD,
		Status: entity.ReceivableStatusPending,
	}}

	_, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodUSD,
		CustomerID:    "c1",
		OnCredit:      true,
		Items:         []dto.SaleItemRequest{{ProductID: "p2", Quantity: 2}}, // 14.50 USD
	})
	assert.ErrorIs(t, err, domain.ErrCreditLimitExceeded)
	assert.Empty(t, env.saleRepo.sales)
}

// Crédito sin cliente o combinado con pago mixto: inválido.
func TestCreateSale_CreditoInvalido(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodUSD,
		OnCredit:      true, // sin customer_id
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodMixed,
		CustomerID:    "c1",
		OnCredit:      true,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "crédito con pago mixto no tiene sentido")
}

// La venta acumula puntos (1 por USD entero) y puede subir el nivel del cliente.
func TestCreateSale_AcumulaPuntosYSubeNivel(t *testing.T) {
	env := newTestEnv()

	// 480 puntos + 29 USD de compra → 509 puntos → nivel silver
	_, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodUSD,
		CustomerID:    "c1",
		Items:         []dto.SaleItemRequest{{ProductID: "p2", Quantity: 4}}, // 29.00 USD
	})
	require.NoError(t, err)

	require.Len(t, env.customerRepo.updated, 1)
	updated := env.customerRepo.updated[0]
	assert.Equal(t, 509, updated.TotalPoints)
	assert.Equal(t, entity.LevelSilver, updated.CustomerLevel)
}

// Carrito vacío: rechazado antes de tocar la tasa o el catálogo.
func TestCreateSale_CarritoVacio(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodUSD,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// Sin tasa activa y sin tasa en el request: la venta no puede calcularse.
func TestCreateSale_SinTasaActiva(t *testing.T) {
	env := newTestEnv()

	// Reconstruir el use case con rate repo sin tasa activa
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Harina PAN", PriceUSD: dec("2.50")},
	}}
	uc := appsales.NewCreateSaleUseCase(
		&fakeTxRunner{saleRepo: env.saleRepo, receivableRepo: env.receivableRepo, customerRepo: env.customerRepo},
		productRepo, env.customerRepo, &fakeRateRepo{active: nil},
		env.saleRepo, env.receivableRepo,
	)

	_, err := uc.CreateSale(context.Background(), "u1", "Ana", dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMethodUSD,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNoActiveRate)
}
