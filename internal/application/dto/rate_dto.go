package dto

import "github.com/shopspring/decimal"

// SetRateRequest body para POST /api/exchange-rate (solo admin).
type SetRateRequest struct {
	USDToVES decimal.Decimal `json:"usd_to_ves"`
	Source   string          `json:"source,omitempty"` // ej: "BCV", "manual"
}

// RateResponse tasa de cambio en respuestas.
type RateResponse struct {
	ID        string          `json:"id"`
	USDToVES  decimal.Decimal `json:"usd_to_ves"`
	Source    string          `json:"source"`
	IsActive  bool            `json:"is_active"`
	CreatedAt string          `json:"created_at"`
}
