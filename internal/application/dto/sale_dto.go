package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest body para POST /api/sales.
// Si Rate va vacío se usa la tasa activa. PaymentDetails es obligatorio para
// método mixed. OnCredit requiere CustomerID.
type CreateSaleRequest struct {
	PaymentMethod  string               `json:"payment_method"` // usd | ves | mixed
	CustomerID     string               `json:"customer_id,omitempty"`
	OnCredit       bool                 `json:"on_credit,omitempty"`
	PaymentTerms   int                  `json:"payment_terms,omitempty"` // días, solo on_credit
	Rate           decimal.Decimal      `json:"rate,omitempty"`          // opcional: fijar tasa
	Items          []SaleItemRequest    `json:"items"`
	PaymentDetails *MixedPaymentRequest `json:"payment_details,omitempty"`
}

// SaleItemRequest línea del carrito. Si UnitPriceUSD va en cero se usa el
// precio de catálogo del producto.
type SaleItemRequest struct {
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	UnitPriceUSD decimal.Decimal `json:"unit_price_usd,omitempty"`
}

// MixedPaymentRequest detalle de pago mixto.
type MixedPaymentRequest struct {
	PaidUSD        decimal.Decimal `json:"paid_usd"`
	PaidVES        decimal.Decimal `json:"paid_ves"`
	LastFourDigits string          `json:"last_four_digits,omitempty"`
}

// SaleResponse venta con detalle para POST/GET /api/sales.
type SaleResponse struct {
	ID             string             `json:"id"`
	PaymentMethod  string             `json:"payment_method"`
	TotalUSD       decimal.Decimal    `json:"total_usd"`
	TotalVES       decimal.Decimal    `json:"total_ves"`
	RateUsed       decimal.Decimal    `json:"rate_used"`
	PaidUSD        decimal.Decimal    `json:"paid_usd,omitempty"`
	PaidVES        decimal.Decimal    `json:"paid_ves,omitempty"`
	ChangeUSD      decimal.Decimal    `json:"change_usd,omitempty"`
	LastFourDigits string             `json:"last_four_digits,omitempty"`
	OnCredit       bool               `json:"on_credit,omitempty"`
	CustomerID     string             `json:"customer_id,omitempty"`
	UserID         string             `json:"user_id"`
	UserName       string             `json:"user_name"`
	Date           string             `json:"date"`
	Items          []SaleItemResponse `json:"items"`
}

// SaleItemResponse línea de la venta en la respuesta.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	PriceUSD    decimal.Decimal `json:"price_usd"`
	PriceVES    decimal.Decimal `json:"price_ves"`
}
