package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard financiero.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTotals devuelve cantidad de ventas y totales por moneda en el rango.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
// Los totales USD y VES van por separado, nunca combinados.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, startDate, endDate time.Time) (*repository.SalesTotalsResult, error) {
	const query = `
	SELECT
	    COUNT(*)                       AS sale_count,
	    COALESCE(SUM(total_usd), 0)    AS total_usd,
	    COALESCE(SUM(total_ves), 0)    AS total_ves
	FROM sales
	WHERE created_at BETWEEN $1 AND $2`

	var result repository.SalesTotalsResult
	err := r.pool.QueryRow(ctx, query, startDate, endDate).Scan(
		&result.SaleCount, &result.TotalUSD, &result.TotalVES,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return &result, nil
}

// GetOutstandingTotals agrupa los saldos pending/overdue por tipo de entidad y
// moneda. El GROUP BY por currency garantiza que nunca se suman monedas distintas.
func (r *AnalyticsRepo) GetOutstandingTotals(ctx context.Context) ([]repository.OutstandingResult, error) {
	const query = `
	SELECT
	    entity_type,
	    currency,
	    SUM(amount)  AS total,
	    COUNT(*)     AS count
	FROM receivables
	WHERE status IN ('pending', 'overdue')
	GROUP BY entity_type, currency
	ORDER BY entity_type, currency`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetOutstandingTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.OutstandingResult
	for rows.Next() {
		var row repository.OutstandingResult
		if err := rows.Scan(&row.EntityType, &row.Currency, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetOutstandingTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los productos con más ingreso USD en el rango.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    si.product_id,
	    si.product_name,
	    SUM(si.quantity)                AS units_sold,
	    SUM(si.quantity * si.price_usd) AS revenue_usd
	FROM sale_items si
	JOIN sales s ON s.id = si.sale_id
	WHERE s.created_at BETWEEN $1 AND $2
	GROUP BY si.product_id, si.product_name
	ORDER BY revenue_usd DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.UnitsSold, &row.RevenueUSD); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
