// Package receivables expone los casos de uso de cuentas por cobrar/pagar.
// El envejecimiento (pending → overdue) se re-deriva en cada lectura y las
// transiciones detectadas se persisten; no hay proceso de fondo.
package receivables

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/receivable"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

// UseCase casos de uso para cuentas por cobrar/pagar.
type UseCase struct {
	repo repository.ReceivableRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ReceivableRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra una factura manual (por cobrar a cliente o por pagar a proveedor).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateReceivableRequest) (*dto.ReceivableResponse, error) {
	now := time.Now()
	var dueDate time.Time
	if in.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = parsed
	}
	rec, err := receivable.New(in.InvoiceNumber, in.EntityType, in.EntityName,
		in.Amount, in.Currency, dueDate, in.PaymentTerms, in.Description, now)
	if err != nil {
		return nil, err
	}
	rec.ID = uuid.New().String()
	if err := uc.repo.Create(rec); err != nil {
		return nil, err
	}
	return toResponse(rec), nil
}

// List devuelve cuentas filtradas por tipo de entidad y/o estado, refrescando
// primero el envejecimiento con la fecha actual y persistiendo las transiciones.
func (uc *UseCase) List(ctx context.Context, entityType, status string, limit, offset int) ([]*dto.ReceivableResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(entityType, status, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := uc.persistAging(list); err != nil {
		return nil, err
	}
	out := make([]*dto.ReceivableResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResponse(r))
	}
	return out, nil
}

// MarkPaid marca una cuenta como pagada (pending/overdue → paid).
func (uc *UseCase) MarkPaid(ctx context.Context, id string) (*dto.ReceivableResponse, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if err := receivable.MarkPaid(rec, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(rec); err != nil {
		return nil, err
	}
	return toResponse(rec), nil
}

// Outstanding devuelve el desglose por moneda del saldo pendiente, opcionalmente
// filtrado por entidad y/o moneda. Nunca combina monedas en un solo número.
func (uc *UseCase) Outstanding(ctx context.Context, entityName, currency string) (*dto.OutstandingResponse, error) {
	list, err := uc.repo.ListOutstanding(entityName)
	if err != nil {
		return nil, err
	}
	if err := uc.persistAging(list); err != nil {
		return nil, err
	}
	totals := receivable.AggregateOutstanding(list, entityName, currency)
	if totals == nil {
		totals = map[string]decimal.Decimal{}
	}
	return &dto.OutstandingResponse{EntityName: entityName, Totals: totals}, nil
}

// persistAging aplica RefreshStatuses con la fecha actual y guarda solo las
// cuentas que transicionaron. Seguro de ejecutar en cada lectura (idempotente).
func (uc *UseCase) persistAging(list []*entity.Receivable) error {
	changed := receivable.RefreshStatuses(list, time.Now())
	for _, r := range changed {
		if err := uc.repo.UpdateStatus(r); err != nil {
			return err
		}
	}
	return nil
}

func toResponse(r *entity.Receivable) *dto.ReceivableResponse {
	return &dto.ReceivableResponse{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		EntityType:    r.EntityType,
		EntityName:    r.EntityName,
		Amount:        r.Amount,
		Currency:      r.Currency,
		DueDate:       r.DueDate.Format("2006-01-02"),
		Status:        r.Status,
		PaymentTerms:  r.PaymentTerms,
		Description:   r.Description,
		SaleID:        r.SaleID,
	}
}
