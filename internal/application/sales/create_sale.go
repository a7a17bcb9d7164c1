package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/loyalty"
	"github.com/flowi-app/flowi-api/internal/domain/receivable"
	domainsales "github.com/flowi-app/flowi-api/internal/domain/sales"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
	"github.com/flowi-app/flowi-api/pkg/money"
)

// CreateSaleUseCase registra una venta: congela la tasa activa, calcula los
// totales con el motor puro y persiste venta, puntos de lealtad y (si es a
// crédito) la cuenta por cobrar en una sola transacción.
type CreateSaleUseCase struct {
	txRunner       SalesTxRunner
	productRepo    repository.ProductRepository
	customerRepo   repository.CustomerRepository
	rateRepo       repository.ExchangeRateRepository
	saleRepo       repository.SaleRepository
	receivableRepo repository.ReceivableRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SalesTxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	rateRepo repository.ExchangeRateRepository,
	saleRepo repository.SaleRepository,
	receivableRepo repository.ReceivableRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		customerRepo:   customerRepo,
		rateRepo:       rateRepo,
		saleRepo:       saleRepo,
		receivableRepo: receivableRepo,
	}
}

// CreateSale valida el carrito contra el catálogo, ejecuta el motor de cálculo
// y persiste el resultado.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID, userName string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.OnCredit && in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OnCredit && in.PaymentMethod == entity.PaymentMethodMixed {
		// Una venta a crédito no lleva pago mixto: el saldo completo queda por cobrar
		return nil, domain.ErrInvalidInput
	}

	// Tasa: la del request si viene fijada, si no la activa
	rate := in.Rate
	if !rate.GreaterThan(decimal.Zero) {
		active, err := uc.rateRepo.GetActive()
		if err != nil {
			return nil, fmt.Errorf("obtener tasa activa: %w", err)
		}
		if active == nil {
			return nil, domain.ErrNoActiveRate
		}
		rate = active.USDToVES
	}

	// Resolver productos y precios (fuera de la tx, solo lectura)
	cart := make([]domainsales.CartItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		price := item.UnitPriceUSD
		if price.IsZero() {
			price = product.PriceUSD
		}
		cart = append(cart, domainsales.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			PriceUSD:    price,
		})
	}

	var details *entity.MixedPaymentDetails
	if in.PaymentDetails != nil {
		details = &entity.MixedPaymentDetails{
			PaidUSD:        in.PaymentDetails.PaidUSD,
			PaidVES:        in.PaymentDetails.PaidVES,
			LastFourDigits: in.PaymentDetails.LastFourDigits,
		}
	}

	sale, err := domainsales.Compute(cart, in.PaymentMethod, rate, details)
	if err != nil {
		return nil, err
	}

	// Cliente (opcional: consumidor final si no viene)
	var customer *entity.Customer
	if in.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	sale.ID = uuid.New().String()
	sale.CustomerID = in.CustomerID
	sale.OnCredit = in.OnCredit
	sale.PaymentTerms = in.PaymentTerms
	sale.UserID = userID
	sale.UserName = userName
	sale.CreatedAt = now
	for i := range sale.Items {
		sale.Items[i].ID = uuid.New().String()
		sale.Items[i].SaleID = sale.ID
	}

	// Cuenta por cobrar de la venta a crédito: en la moneda del método de pago
	var rec *entity.Receivable
	if in.OnCredit {
		rec, err = uc.buildCreditReceivable(sale, customer, now)
		if err != nil {
			return nil, err
		}
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		receivableRepo repository.ReceivableRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(&sale.Items[i]); err != nil {
				return err
			}
		}
		if rec != nil {
			if err := receivableRepo.Create(rec); err != nil {
				return err
			}
		}
		if customer != nil {
			loyalty.Accrue(customer, sale.TotalUSD)
			customer.UpdatedAt = now
			if err := customerRepo.Update(customer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// buildCreditReceivable arma la cuenta por cobrar de una venta a crédito y
// valida el límite de crédito del cliente contra su saldo pendiente actual
// (equivalente USD a la tasa de la venta).
func (uc *CreateSaleUseCase) buildCreditReceivable(sale *entity.Sale, customer *entity.Customer, now time.Time) (*entity.Receivable, error) {
	currency := entity.CurrencyUSD
	amount := sale.TotalUSD
	if sale.PaymentMethod == entity.PaymentMethodVES {
		currency = entity.CurrencyVES
		amount = sale.TotalVES
	}

	if customer.CreditLimit.GreaterThan(decimal.Zero) {
		outstanding, err := uc.receivableRepo.ListOutstanding(customer.Name)
		if err != nil {
			return nil, err
		}
		totals := receivable.AggregateOutstanding(outstanding, customer.Name, "")
		currentUSD := totals[entity.CurrencyUSD]
		if ves, ok := totals[entity.CurrencyVES]; ok {
			vesAsUSD, err := money.ToUSD(ves, sale.RateUsed)
			if err != nil {
				return nil, err
			}
			currentUSD = currentUSD.Add(vesAsUSD)
		}
		if currentUSD.Add(sale.TotalUSD).GreaterThan(customer.CreditLimit) {
			return nil, domain.ErrCreditLimitExceeded
		}
	}

	terms := sale.PaymentTerms
	if terms <= 0 {
		terms = 30
	}
	rec, err := receivable.New(
		"V-"+sale.ID[:8], entity.EntityTypeCustomer, customer.Name,
		amount, currency, time.Time{}, terms,
		fmt.Sprintf("venta a crédito de %s", sale.UserName), now,
	)
	if err != nil {
		return nil, err
	}
	rec.ID = uuid.New().String()
	rec.SaleID = sale.ID
	return rec, nil
}

// GetSale obtiene una venta por ID con su detalle completo.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return toSaleResponse(sale), nil
}

// ListSales lista ventas con paginación (sin detalle de ítems).
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, limit, offset int) ([]*dto.SaleResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(sale *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:             sale.ID,
		PaymentMethod:  sale.PaymentMethod,
		TotalUSD:       sale.TotalUSD,
		TotalVES:       sale.TotalVES,
		RateUsed:       sale.RateUsed,
		PaidUSD:        sale.PaidUSD,
		PaidVES:        sale.PaidVES,
		ChangeUSD:      sale.ChangeUSD,
		LastFourDigits: sale.LastFourDigits,
		OnCredit:       sale.OnCredit,
		CustomerID:     sale.CustomerID,
		UserID:         sale.UserID,
		UserName:       sale.UserName,
		Date:           sale.CreatedAt.Format("2006-01-02"),
		Items:          make([]dto.SaleItemResponse, 0, len(sale.Items)),
	}
	for _, it := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			PriceUSD:    it.PriceUSD,
			PriceVES:    it.PriceVES,
		})
	}
	return resp
}
