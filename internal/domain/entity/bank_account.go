package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento bancario.
const (
	BankTxDeposit    = "deposit"
	BankTxWithdrawal = "withdrawal"
)

// BankAccount cuenta bancaria del negocio, en una sola moneda.
type BankAccount struct {
	ID            string
	BankName      string
	AccountNumber string
	Currency      string // USD | VES
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BankTransaction movimiento sobre una cuenta bancaria.
// BalanceAfter es el saldo resultante, congelado al registrar el movimiento.
type BankTransaction struct {
	ID           string
	AccountID    string
	Type         string // deposit | withdrawal
	Amount       decimal.Decimal
	Description  string
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}
