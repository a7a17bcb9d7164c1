package dto

import "github.com/shopspring/decimal"

// CreateBankAccountRequest body para POST /api/bank-accounts.
type CreateBankAccountRequest struct {
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number"`
	Currency       string          `json:"currency"` // USD | VES
	InitialBalance decimal.Decimal `json:"initial_balance,omitempty"`
}

// BankAccountResponse cuenta bancaria en respuestas.
type BankAccountResponse struct {
	ID            string          `json:"id"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
}

// CreateBankTransactionRequest body para POST /api/bank-accounts/:id/transactions.
type CreateBankTransactionRequest struct {
	Type        string          `json:"type"` // deposit | withdrawal
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// BankTransactionResponse movimiento bancario en respuestas.
type BankTransactionResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Date         string          `json:"date"`
}
