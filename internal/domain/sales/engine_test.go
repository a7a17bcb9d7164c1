package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/sales"
	"github.com/flowi-app/flowi-api/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores contra los escenarios de referencia del negocio:
//
//	carrito [{10.00 USD × 2}] a tasa 36.5:
//	  - método usd   → TotalUSD 20.00, TotalVES 730.00
//	  - método mixed con paidUSD 5.00 + paidVES 547.50 (≈15.00 USD) → cubre
//	    exactamente el total, vuelto 0.
// ──────────────────────────────────────────────────────────────────────────────

var testRate = decimal.NewFromFloat(36.5)

func cartTenBy2() []sales.CartItem {
	return []sales.CartItem{
		{ProductID: "p1", ProductName: "Harina PAN", Quantity: 2, PriceUSD: decimal.NewFromFloat(10)},
	}
}

func TestCompute_TotalesEnAmbasMonedas(t *testing.T) {
	sale, err := sales.Compute(cartTenBy2(), entity.PaymentMethodUSD, testRate, nil)
	require.NoError(t, err)

	assert.Equal(t, "20.00", sale.TotalUSD.StringFixed(2))
	assert.Equal(t, "730.00", sale.TotalVES.StringFixed(2))
	assert.True(t, sale.RateUsed.Equal(testRate), "la tasa usada queda congelada en la venta")
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "365.00", sale.Items[0].PriceVES.StringFixed(2),
		"el precio VES del ítem se congela a la tasa de la venta")
}

func TestCompute_EsDeterminista(t *testing.T) {
	s1, err1 := sales.Compute(cartTenBy2(), entity.PaymentMethodUSD, testRate, nil)
	s2, err2 := sales.Compute(cartTenBy2(), entity.PaymentMethodUSD, testRate, nil)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2, "mismo carrito, tasa y método deben producir la misma venta")
}

func TestCompute_TotalEsSumaDeLineas(t *testing.T) {
	items := []sales.CartItem{
		{ProductID: "p1", ProductName: "Café", Quantity: 3, PriceUSD: decimal.NewFromFloat(2.5)},
		{ProductID: "p2", ProductName: "Azúcar", Quantity: 1, PriceUSD: decimal.NewFromFloat(1.25)},
		{ProductID: "p3", ProductName: "Arroz", Quantity: 4, PriceUSD: decimal.NewFromFloat(0.99)},
	}
	sale, err := sales.Compute(items, entity.PaymentMethodVES, testRate, nil)
	require.NoError(t, err)

	// 7.50 + 1.25 + 3.96 = 12.71
	assert.Equal(t, "12.71", sale.TotalUSD.StringFixed(2))

	sumVES := decimal.Zero
	for _, it := range sale.Items {
		sumVES = sumVES.Add(it.PriceVES.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.True(t, sale.TotalVES.Equal(money.Round(sumVES)),
		"TotalVES debe ser la suma exacta post-redondeo de las líneas")
}

func TestCompute_MetodosSimplesNoLlevanPagos(t *testing.T) {
	for _, method := range []string{entity.PaymentMethodUSD, entity.PaymentMethodVES} {
		sale, err := sales.Compute(cartTenBy2(), method, testRate, nil)
		require.NoError(t, err)
		assert.True(t, sale.PaidUSD.IsZero(), "método %s no registra PaidUSD", method)
		assert.True(t, sale.PaidVES.IsZero(), "método %s no registra PaidVES", method)
		assert.Empty(t, sale.LastFourDigits)
	}
}

// ── Pago mixto ────────────────────────────────────────────────────────────────

func TestCompute_MixtoExacto_SinVuelto(t *testing.T) {
	details := &entity.MixedPaymentDetails{
		PaidUSD:        decimal.NewFromFloat(5),
		PaidVES:        decimal.NewFromFloat(547.5), // 15.00 USD a 36.5
		LastFourDigits: "4821",
	}
	sale, err := sales.Compute(cartTenBy2(), entity.PaymentMethodMixed, testRate, details)
	require.NoError(t, err)

	assert.Equal(t, "5.00", sale.PaidUSD.StringFixed(2))
	assert.Equal(t, "547.50", sale.PaidVES.StringFixed(2))
	assert.Equal(t, "0.00", sale.ChangeUSD.StringFixed(2), "pago exacto no genera vuelto")
	assert.Equal(t, "4821", sale.LastFourDigits)
}

func TestCompute_MixtoConExcedente_CalculaVuelto(t *testing.T) {
	details := &entity.MixedPaymentDetails{
		PaidUSD: decimal.NewFromFloat(10),
		PaidVES: decimal.NewFromFloat(547.5), // 10 + 15 = 25 USD sobre 20
	}
	sale, err := sales.Compute(cartTenBy2(), entity.PaymentMethodMixed, testRate, details)
	require.NoError(t, err)
	assert.Equal(t, "5.00", sale.ChangeUSD.StringFixed(2))
}

func TestCompute_MixtoInsuficiente(t *testing.T) {
	details := &entity.MixedPaymentDetails{
		PaidUSD: decimal.NewFromFloat(5),
		PaidVES: decimal.NewFromFloat(365), // 5 + 10 = 15 USD, faltan 5
	}
	_, err := sales.Compute(cartTenBy2(), entity.PaymentMethodMixed, testRate, details)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestCompute_MixtoEnElBordeDeLaTolerancia(t *testing.T) {
	// Total 20.00; pagado 19.99 equivalente → dentro del centavo de tolerancia
	details := &entity.MixedPaymentDetails{
		PaidUSD: decimal.NewFromFloat(19.99),
		PaidVES: decimal.Zero,
	}
	sale, err := sales.Compute(cartTenBy2(), entity.PaymentMethodMixed, testRate, details)
	require.NoError(t, err)
	assert.Equal(t, "0.00", sale.ChangeUSD.StringFixed(2), "el faltante tolerado no produce vuelto negativo")

	// 19.98 ya queda fuera de la tolerancia
	details.PaidUSD = decimal.NewFromFloat(19.98)
	_, err = sales.Compute(cartTenBy2(), entity.PaymentMethodMixed, testRate, details)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestCompute_MixtoSinDetalle(t *testing.T) {
	_, err := sales.Compute(cartTenBy2(), entity.PaymentMethodMixed, testRate, nil)
	assert.ErrorIs(t, err, domain.ErrMissingPaymentDetails)
}

func TestCompute_MixtoConMontosNegativos(t *testing.T) {
	details := &entity.MixedPaymentDetails{
		PaidUSD: decimal.NewFromFloat(-1),
		PaidVES: decimal.NewFromFloat(1000),
	}
	_, err := sales.Compute(cartTenBy2(), entity.PaymentMethodMixed, testRate, details)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Errores de validación del carrito ─────────────────────────────────────────

func TestCompute_CarritoVacio(t *testing.T) {
	_, err := sales.Compute(nil, entity.PaymentMethodUSD, testRate, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCompute_CantidadCeroONegativa(t *testing.T) {
	items := []sales.CartItem{{ProductID: "p1", Quantity: 0, PriceUSD: decimal.NewFromInt(1)}}
	_, err := sales.Compute(items, entity.PaymentMethodUSD, testRate, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	items[0].Quantity = -3
	_, err = sales.Compute(items, entity.PaymentMethodUSD, testRate, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCompute_PrecioNegativo(t *testing.T) {
	items := []sales.CartItem{{ProductID: "p1", Quantity: 1, PriceUSD: decimal.NewFromFloat(-0.5)}}
	_, err := sales.Compute(items, entity.PaymentMethodUSD, testRate, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_TasaInvalida(t *testing.T) {
	_, err := sales.Compute(cartTenBy2(), entity.PaymentMethodUSD, decimal.Zero, nil)
	assert.ErrorIs(t, err, money.ErrInvalidRate)
}

func TestCompute_MetodoDesconocido(t *testing.T) {
	_, err := sales.Compute(cartTenBy2(), "bitcoin", testRate, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
