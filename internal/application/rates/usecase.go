// Package rates administra la tasa de cambio USD→VES: exactamente una activa,
// historial conservado para auditoría.
package rates

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
	"github.com/flowi-app/flowi-api/pkg/money"
)

// UseCase casos de uso de tasa de cambio.
type UseCase struct {
	repo repository.ExchangeRateRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ExchangeRateRepository) *UseCase {
	return &UseCase{repo: repo}
}

// SetRate activa una nueva tasa y desactiva la anterior. La tasa anterior se
// conserva en el historial.
func (uc *UseCase) SetRate(ctx context.Context, in dto.SetRateRequest) (*dto.RateResponse, error) {
	if !in.USDToVES.GreaterThan(decimal.Zero) {
		return nil, money.ErrInvalidRate
	}
	source := in.Source
	if source == "" {
		source = "manual"
	}
	if err := uc.repo.DeactivateAll(); err != nil {
		return nil, err
	}
	rate := &entity.ExchangeRate{
		ID:        uuid.New().String(),
		USDToVES:  in.USDToVES,
		Source:    source,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(rate); err != nil {
		return nil, err
	}
	return toResponse(rate), nil
}

// GetActive devuelve la tasa activa actual.
func (uc *UseCase) GetActive(ctx context.Context) (*dto.RateResponse, error) {
	rate, err := uc.repo.GetActive()
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNoActiveRate
	}
	return toResponse(rate), nil
}

// History lista el historial de tasas, la más reciente primero.
func (uc *UseCase) History(ctx context.Context, limit, offset int) ([]*dto.RateResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListHistory(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RateResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResponse(r))
	}
	return out, nil
}

func toResponse(r *entity.ExchangeRate) *dto.RateResponse {
	return &dto.RateResponse{
		ID:        r.ID,
		USDToVES:  r.USDToVES,
		Source:    r.Source,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
