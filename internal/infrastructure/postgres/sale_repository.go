package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta. Los ítems van con CreateItem.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, payment_method, total_usd, total_ves, rate_used,
			paid_usd, paid_ves, change_usd, last_four_digits, on_credit, payment_terms,
			customer_id, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	customerID := (*string)(nil)
	if sale.CustomerID != "" {
		customerID = &sale.CustomerID
	}
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.PaymentMethod, sale.TotalUSD, sale.TotalVES, sale.RateUsed,
		sale.PaidUSD, sale.PaidVES, sale.ChangeUSD, sale.LastFourDigits,
		sale.OnCredit, sale.PaymentTerms, customerID, sale.UserID, sale.UserName, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta con su precio VES congelado.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, price_usd, price_ves)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.ProductName, item.Quantity,
		item.PriceUSD, item.PriceVES,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta (sin ítems; usar GetItemsBySaleID).
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, payment_method, total_usd, total_ves, rate_used,
			paid_usd, paid_ves, change_usd, last_four_digits, on_credit, payment_terms,
			COALESCE(customer_id, ''), user_id, user_name, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.PaymentMethod, &s.TotalUSD, &s.TotalVES, &s.RateUsed,
		&s.PaidUSD, &s.PaidVES, &s.ChangeUSD, &s.LastFourDigits, &s.OnCredit, &s.PaymentTerms,
		&s.CustomerID, &s.UserID, &s.UserName, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySaleID obtiene las líneas de una venta.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, price_usd, price_ves
		FROM sale_items WHERE sale_id = $1 ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.PriceUSD, &it.PriceVES); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista ventas (cabeceras) de más reciente a más antigua.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, payment_method, total_usd, total_ves, rate_used,
			paid_usd, paid_ves, change_usd, last_four_digits, on_credit, payment_terms,
			COALESCE(customer_id, ''), user_id, user_name, created_at
		FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.PaymentMethod, &s.TotalUSD, &s.TotalVES, &s.RateUsed,
			&s.PaidUSD, &s.PaidVES, &s.ChangeUSD, &s.LastFourDigits, &s.OnCredit, &s.PaymentTerms,
			&s.CustomerID, &s.UserID, &s.UserName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
