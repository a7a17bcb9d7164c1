package repository

import "github.com/flowi-app/flowi-api/internal/domain/entity"

// ExchangeRateRepository define el puerto de persistencia para ExchangeRate.
// Solo una tasa está activa; el historial se conserva para auditoría.
type ExchangeRateRepository interface {
	Create(rate *entity.ExchangeRate) error
	GetActive() (*entity.ExchangeRate, error)
	// DeactivateAll desactiva la tasa activa actual (previo a activar una nueva).
	DeactivateAll() error
	ListHistory(limit, offset int) ([]*entity.ExchangeRate, error)
}
