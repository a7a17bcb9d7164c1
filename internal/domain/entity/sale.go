package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago de una venta.
const (
	PaymentMethodUSD   = "usd"   // Pago completo en dólares
	PaymentMethodVES   = "ves"   // Pago completo en bolívares
	PaymentMethodMixed = "mixed" // Pago combinado USD + VES
)

// Sale representa una venta POS con totales en ambas monedas.
// La tasa usada queda congelada en RateUsed y en los precios VES de cada ítem:
// los totales históricos nunca cambian aunque la tasa activa se actualice después.
type Sale struct {
	ID             string
	PaymentMethod  string // usd | ves | mixed
	TotalUSD       decimal.Decimal
	TotalVES       decimal.Decimal
	RateUsed       decimal.Decimal
	PaidUSD        decimal.Decimal // solo pago mixto
	PaidVES        decimal.Decimal // solo pago mixto
	ChangeUSD      decimal.Decimal // vuelto en USD (pago mixto)
	LastFourDigits string          // últimos 4 dígitos de la tarjeta/referencia (pago mixto)
	OnCredit       bool            // true si genera cuenta por cobrar
	PaymentTerms   int             // días de plazo si OnCredit
	CustomerID     string          // opcional: consumidor final si vacío
	UserID         string
	UserName       string
	Items          []SaleItem
	CreatedAt      time.Time
}

// SaleItem línea de una venta. PriceVES es el precio congelado a la tasa de la
// venta, no se recalcula con tasas posteriores.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	PriceUSD    decimal.Decimal
	PriceVES    decimal.Decimal
}

// MixedPaymentDetails detalle requerido cuando el método de pago es "mixed".
type MixedPaymentDetails struct {
	PaidUSD        decimal.Decimal
	PaidVES        decimal.Decimal
	LastFourDigits string
}
