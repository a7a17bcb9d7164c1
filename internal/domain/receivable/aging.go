// Package receivable implementa el motor de cuentas por cobrar/pagar:
// creación, envejecimiento (aging) por fecha de vencimiento y agregación de
// saldos pendientes por entidad y moneda.
//
// El envejecimiento es una re-derivación pura que se ejecuta al leer, no hay
// temporizador de fondo. Ejecutarla dos veces con la misma fecha produce el
// mismo resultado.
package receivable

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
)

// New construye una cuenta por cobrar/pagar en estado pending.
// Si dueDate es cero, se calcula como now + paymentTerms días.
func New(invoiceNumber, entityType, entityName string, amount decimal.Decimal, currency string, dueDate time.Time, paymentTerms int, description string, now time.Time) (*entity.Receivable, error) {
	if invoiceNumber == "" || entityName == "" {
		return nil, domain.ErrInvalidInput
	}
	if entityType != entity.EntityTypeCustomer && entityType != entity.EntityTypeSupplier {
		return nil, domain.ErrInvalidInput
	}
	if currency != entity.CurrencyUSD && currency != entity.CurrencyVES {
		return nil, domain.ErrInvalidInput
	}
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if paymentTerms < 0 {
		return nil, domain.ErrInvalidInput
	}
	if dueDate.IsZero() {
		dueDate = now.AddDate(0, 0, paymentTerms)
	}
	return &entity.Receivable{
		InvoiceNumber: invoiceNumber,
		EntityType:    entityType,
		EntityName:    entityName,
		Amount:        amount.Round(2),
		Currency:      currency,
		DueDate:       dueDate,
		Status:        entity.ReceivableStatusPending,
		PaymentTerms:  paymentTerms,
		Description:   description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// RefreshStatuses transiciona a overdue toda cuenta pending cuya fecha de
// vencimiento sea anterior a asOf. Nunca toca cuentas paid. Devuelve el
// subconjunto que cambió (para que el caller persista solo esas).
// Es idempotente: una segunda pasada con el mismo asOf no cambia nada.
func RefreshStatuses(list []*entity.Receivable, asOf time.Time) []*entity.Receivable {
	var changed []*entity.Receivable
	for _, r := range list {
		if r.Status == entity.ReceivableStatusPending && r.DueDate.Before(asOf) {
			r.Status = entity.ReceivableStatusOverdue
			r.UpdatedAt = asOf
			changed = append(changed, r)
		}
	}
	return changed
}

// MarkPaid marca la cuenta como pagada. paid es terminal: una cuenta ya pagada
// falla con domain.ErrAlreadyPaid y no se muta.
func MarkPaid(r *entity.Receivable, now time.Time) error {
	if r.Status == entity.ReceivableStatusPaid {
		return domain.ErrAlreadyPaid
	}
	r.Status = entity.ReceivableStatusPaid
	r.UpdatedAt = now
	return nil
}

// AggregateOutstanding suma los montos con estado pending u overdue, agrupados
// por moneda. Nunca convierte ni mezcla monedas: el resultado es un desglose
// por moneda, no un número combinado.
//
// entityName y currency filtran si no están vacíos.
func AggregateOutstanding(list []*entity.Receivable, entityName, currency string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, r := range list {
		if r.Status != entity.ReceivableStatusPending && r.Status != entity.ReceivableStatusOverdue {
			continue
		}
		if entityName != "" && r.EntityName != entityName {
			continue
		}
		if currency != "" && r.Currency != currency {
			continue
		}
		totals[r.Currency] = totals[r.Currency].Add(r.Amount)
	}
	for cur, amount := range totals {
		totals[cur] = amount.Round(2)
	}
	return totals
}
