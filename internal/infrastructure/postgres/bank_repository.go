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

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementación de BankAccountRepository (usable con pool o tx).
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

// Create persiste una cuenta bancaria.
func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, bank_name, account_number, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.BankName, account.AccountNumber, account.Currency, account.Balance,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta bancaria por ID.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	query := `
		SELECT id, bank_name, account_number, currency, balance, created_at, updated_at
		FROM bank_accounts WHERE id = $1`
	var a entity.BankAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.BankName, &a.AccountNumber, &a.Currency, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return &a, nil
}

// List lista cuentas bancarias con paginación.
func (r *BankAccountRepo) List(limit, offset int) ([]*entity.BankAccount, error) {
	query := `
		SELECT id, bank_name, account_number, currency, balance, created_at, updated_at
		FROM bank_accounts ORDER BY bank_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(&a.ID, &a.BankName, &a.AccountNumber, &a.Currency, &a.Balance,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// UpdateBalance persiste el saldo actualizado de la cuenta.
func (r *BankAccountRepo) UpdateBalance(account *entity.BankAccount) error {
	query := `UPDATE bank_accounts SET balance = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, account.ID, account.Balance, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bank account balance: %w", err)
	}
	return nil
}

// CreateTransaction persiste un movimiento con su saldo resultante congelado.
func (r *BankAccountRepo) CreateTransaction(tx *entity.BankTransaction) error {
	query := `
		INSERT INTO bank_transactions (id, account_id, type, amount, description, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.AccountID, tx.Type, tx.Amount, tx.Description, tx.BalanceAfter, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank transaction: %w", err)
	}
	return nil
}

// ListTransactions lista los movimientos de una cuenta, de más reciente a más antiguo.
func (r *BankAccountRepo) ListTransactions(accountID string, limit, offset int) ([]*entity.BankTransaction, error) {
	query := `
		SELECT id, account_id, type, amount, description, balance_after, created_at
		FROM bank_transactions WHERE account_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bank transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankTransaction
	for rows.Next() {
		var t entity.BankTransaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Type, &t.Amount, &t.Description,
			&t.BalanceAfter, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bank transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
