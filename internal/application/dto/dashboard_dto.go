package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen financiero para GET /api/dashboard/summary.
// Todos los totales van por moneda; nunca se combinan USD y VES en un número.
type DashboardSummaryDTO struct {
	TodaySales     SalesTotalsDTO          `json:"today_sales"`
	MonthlySales   SalesTotalsDTO          `json:"monthly_sales"`
	Outstanding    []OutstandingSummaryDTO `json:"outstanding"`
	TopProducts    []TopProductDTO         `json:"top_products"`
	ActiveRate     decimal.Decimal         `json:"active_rate"`
	RateSource     string                  `json:"rate_source,omitempty"`
	DateLabel      string                  `json:"date_label"`
}

// SalesTotalsDTO totales de ventas de un período, por moneda.
type SalesTotalsDTO struct {
	SaleCount int             `json:"sale_count"`
	TotalUSD  decimal.Decimal `json:"total_usd"`
	TotalVES  decimal.Decimal `json:"total_ves"`
}

// OutstandingSummaryDTO saldo pendiente por tipo de entidad y moneda.
type OutstandingSummaryDTO struct {
	EntityType string          `json:"entity_type"` // customer | supplier
	Currency   string          `json:"currency"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}

// TopProductDTO producto del widget de más vendidos.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	RevenueUSD  decimal.Decimal `json:"revenue_usd"`
}
