package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)

// ReceivableRepo implementación de ReceivableRepository (usable con pool o tx).
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

const receivableColumns = `id, invoice_number, entity_type, entity_name, amount, currency,
	due_date, status, payment_terms, description, COALESCE(sale_id, ''), created_at, updated_at`

// Create persiste una cuenta por cobrar/pagar. Número de factura único.
func (r *ReceivableRepo) Create(rec *entity.Receivable) error {
	query := `
		INSERT INTO receivables (id, invoice_number, entity_type, entity_name, amount, currency,
			due_date, status, payment_terms, description, sale_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	saleID := (*string)(nil)
	if rec.SaleID != "" {
		saleID = &rec.SaleID
	}
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.InvoiceNumber, rec.EntityType, rec.EntityName, rec.Amount, rec.Currency,
		rec.DueDate, rec.Status, rec.PaymentTerms, rec.Description, saleID,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("insert receivable: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *ReceivableRepo) GetByID(id string) (*entity.Receivable, error) {
	query := `SELECT ` + receivableColumns + ` FROM receivables WHERE id = $1`
	var rec entity.Receivable
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.InvoiceNumber, &rec.EntityType, &rec.EntityName, &rec.Amount, &rec.Currency,
		&rec.DueDate, &rec.Status, &rec.PaymentTerms, &rec.Description, &rec.SaleID,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receivable: %w", err)
	}
	return &rec, nil
}

// List lista cuentas filtrando por tipo de entidad y/o estado si no están vacíos.
func (r *ReceivableRepo) List(entityType, status string, limit, offset int) ([]*entity.Receivable, error) {
	query := `SELECT ` + receivableColumns + `
		FROM receivables
		WHERE ($1 = '' OR entity_type = $1) AND ($2 = '' OR status = $2)
		ORDER BY due_date LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, entityType, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	return scanReceivables(rows)
}

// ListOutstanding devuelve todas las cuentas pending u overdue, opcionalmente
// filtradas por nombre de entidad.
func (r *ReceivableRepo) ListOutstanding(entityName string) ([]*entity.Receivable, error) {
	query := `SELECT ` + receivableColumns + `
		FROM receivables
		WHERE status IN ('pending', 'overdue') AND ($1 = '' OR entity_name = $1)
		ORDER BY due_date`
	rows, err := r.q.Query(context.Background(), query, entityName)
	if err != nil {
		return nil, fmt.Errorf("list outstanding receivables: %w", err)
	}
	defer rows.Close()
	return scanReceivables(rows)
}

// UpdateStatus persiste solo estado y updated_at (transición de aging o pago).
func (r *ReceivableRepo) UpdateStatus(rec *entity.Receivable) error {
	query := `UPDATE receivables SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, rec.ID, rec.Status, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update receivable status: %w", err)
	}
	return nil
}

func scanReceivables(rows pgx.Rows) ([]*entity.Receivable, error) {
	var list []*entity.Receivable
	for rows.Next() {
		var rec entity.Receivable
		if err := rows.Scan(
			&rec.ID, &rec.InvoiceNumber, &rec.EntityType, &rec.EntityName, &rec.Amount, &rec.Currency,
			&rec.DueDate, &rec.Status, &rec.PaymentTerms, &rec.Description, &rec.SaleID,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
