package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// PriceUSD es la moneda base; el precio VES se congela por venta a la tasa
// activa del momento (ver SaleItem), nunca se guarda aquí.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	PriceUSD    decimal.Decimal
	Category    string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
