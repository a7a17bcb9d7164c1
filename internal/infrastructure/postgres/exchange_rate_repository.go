package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

var _ repository.ExchangeRateRepository = (*ExchangeRateRepo)(nil)

// ExchangeRateRepo implementación de ExchangeRateRepository (usable con pool o tx).
type ExchangeRateRepo struct {
	q Querier
}

// NewExchangeRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExchangeRateRepository(q Querier) *ExchangeRateRepo {
	return &ExchangeRateRepo{q: q}
}

// Create persiste una tasa (el caso de uso desactiva la anterior primero).
func (r *ExchangeRateRepo) Create(rate *entity.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (id, usd_to_ves, source, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.USDToVES, rate.Source, rate.IsActive, rate.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert exchange rate: %w", err)
	}
	return nil
}

// GetActive obtiene la tasa activa, o nil si no hay ninguna.
func (r *ExchangeRateRepo) GetActive() (*entity.ExchangeRate, error) {
	query := `
		SELECT id, usd_to_ves, source, is_active, created_at
		FROM exchange_rates WHERE is_active = TRUE
		ORDER BY created_at DESC LIMIT 1`
	var rate entity.ExchangeRate
	err := r.q.QueryRow(context.Background(), query).Scan(
		&rate.ID, &rate.USDToVES, &rate.Source, &rate.IsActive, &rate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active exchange rate: %w", err)
	}
	return &rate, nil
}

// DeactivateAll desactiva todas las tasas activas (previo a activar una nueva).
func (r *ExchangeRateRepo) DeactivateAll() error {
	_, err := r.q.Exec(context.Background(), `UPDATE exchange_rates SET is_active = FALSE WHERE is_active = TRUE`)
	if err != nil {
		return fmt.Errorf("deactivate exchange rates: %w", err)
	}
	return nil
}

// ListHistory lista tasas de más reciente a más antigua.
func (r *ExchangeRateRepo) ListHistory(limit, offset int) ([]*entity.ExchangeRate, error) {
	query := `
		SELECT id, usd_to_ves, source, is_active, created_at
		FROM exchange_rates ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExchangeRate
	for rows.Next() {
		var rate entity.ExchangeRate
		if err := rows.Scan(&rate.ID, &rate.USDToVES, &rate.Source, &rate.IsActive, &rate.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exchange rate: %w", err)
		}
		list = append(list, &rate)
	}
	return list, rows.Err()
}
