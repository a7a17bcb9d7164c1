package repository

import "github.com/flowi-app/flowi-api/internal/domain/entity"

// BankAccountRepository define el puerto de persistencia para cuentas bancarias
// y sus movimientos.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	List(limit, offset int) ([]*entity.BankAccount, error)
	UpdateBalance(account *entity.BankAccount) error
	CreateTransaction(tx *entity.BankTransaction) error
	ListTransactions(accountID string, limit, offset int) ([]*entity.BankTransaction, error)
}
