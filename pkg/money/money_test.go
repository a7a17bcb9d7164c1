package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowi-app/flowi-api/pkg/money"
)

func TestToVES_ConversionBasica(t *testing.T) {
	// 10.00 USD a tasa 36.5 → 365.00 VES
	got, err := money.ToVES(decimal.NewFromFloat(10), decimal.NewFromFloat(36.5))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(365)),
		"10 USD a tasa 36.5 debe ser 365 VES, fue %s", got)
}

func TestToVES_RedondeaADosDecimales(t *testing.T) {
	// 1.99 × 36.55 = 72.7345 → 72.73
	got, err := money.ToVES(decimal.NewFromFloat(1.99), decimal.NewFromFloat(36.55))
	require.NoError(t, err)
	assert.Equal(t, "72.73", got.StringFixed(2))
}

func TestToVES_TasaCeroONegativa(t *testing.T) {
	_, err := money.ToVES(decimal.NewFromInt(10), decimal.Zero)
	assert.ErrorIs(t, err, money.ErrInvalidRate)

	_, err = money.ToVES(decimal.NewFromInt(10), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, money.ErrInvalidRate)
}

func TestToUSD_EsInversaDeToVES(t *testing.T) {
	rate := decimal.NewFromFloat(36.5)
	ves, err := money.ToVES(decimal.NewFromInt(20), rate)
	require.NoError(t, err)

	usd, err := money.ToUSD(ves, rate)
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(20)), "ida y vuelta debe conservar el monto")
}

func TestToUSD_TasaInvalida(t *testing.T) {
	_, err := money.ToUSD(decimal.NewFromInt(100), decimal.Zero)
	assert.ErrorIs(t, err, money.ErrInvalidRate)
}

func TestRound_MitadHaciaArriba(t *testing.T) {
	assert.Equal(t, "10.01", money.Round(decimal.NewFromFloat(10.005)).StringFixed(2))
	assert.Equal(t, "10.00", money.Round(decimal.NewFromFloat(10.004)).StringFixed(2))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$1,234.50", money.FormatUSD(decimal.NewFromFloat(1234.5)))
}

func TestFormatVES(t *testing.T) {
	assert.Equal(t, "Bs. 45.059,25", money.FormatVES(decimal.NewFromFloat(45059.25)))
}
