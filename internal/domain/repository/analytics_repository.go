package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotalsResult resultado crudo de la consulta de ventas en un rango.
// Los totales van por moneda, nunca combinados.
type SalesTotalsResult struct {
	SaleCount int
	TotalUSD  decimal.Decimal
	TotalVES  decimal.Decimal
}

// OutstandingResult saldo pendiente agrupado por tipo de entidad y moneda.
type OutstandingResult struct {
	EntityType string // customer | supplier
	Currency   string // USD | VES
	Total      decimal.Decimal
	Count      int
}

// TopProductResult producto ordenado por ingreso USD en el período.
type TopProductResult struct {
	ProductID   string
	ProductName string
	UnitsSold   int
	RevenueUSD  decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesTotals devuelve cantidad de ventas y totales por moneda en el rango dado.
	GetSalesTotals(ctx context.Context, startDate, endDate time.Time) (*SalesTotalsResult, error)

	// GetOutstandingTotals devuelve los saldos pending/overdue agrupados por
	// tipo de entidad y moneda.
	GetOutstandingTotals(ctx context.Context) ([]OutstandingResult, error)

	// GetTopProducts devuelve los productos con más ingreso USD en el rango dado.
	GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]TopProductResult, error)
}
