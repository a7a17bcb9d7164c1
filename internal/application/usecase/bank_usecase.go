package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
	"github.com/flowi-app/flowi-api/pkg/money"
)

// BankAccountUseCase casos de uso para cuentas bancarias y sus movimientos.
// Los retiros no admiten sobregiro.
type BankAccountUseCase struct {
	repo repository.BankAccountRepository
}

// NewBankAccountUseCase construye el caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo}
}

// Create crea una cuenta bancaria.
func (uc *BankAccountUseCase) Create(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.BankName == "" || in.AccountNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency != entity.CurrencyUSD && in.Currency != entity.CurrencyVES {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialBalance.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.BankAccount{
		ID:            uuid.New().String(),
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		Currency:      in.Currency,
		Balance:       money.Round(in.InitialBalance),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toBankAccountResponse(account), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *BankAccountUseCase) GetByID(id string) (*dto.BankAccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return toBankAccountResponse(account), nil
}

// List lista cuentas con paginación.
func (uc *BankAccountUseCase) List(limit, offset int) ([]*dto.BankAccountResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BankAccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toBankAccountResponse(a))
	}
	return out, nil
}

// RegisterTransaction registra un depósito o retiro y actualiza el saldo.
// El saldo resultante queda congelado en el movimiento (BalanceAfter).
func (uc *BankAccountUseCase) RegisterTransaction(accountID string, in dto.CreateBankTransactionRequest) (*dto.BankTransactionResponse, error) {
	if in.Type != entity.BankTxDeposit && in.Type != entity.BankTxWithdrawal {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.repo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	amount := money.Round(in.Amount)
	newBalance := account.Balance
	if in.Type == entity.BankTxDeposit {
		newBalance = newBalance.Add(amount)
	} else {
		newBalance = newBalance.Sub(amount)
		if newBalance.LessThan(decimal.Zero) {
			return nil, domain.ErrInsufficientFunds
		}
	}

	now := time.Now()
	tx := &entity.BankTransaction{
		ID:           uuid.New().String(),
		AccountID:    account.ID,
		Type:         in.Type,
		Amount:       amount,
		Description:  in.Description,
		BalanceAfter: newBalance,
		CreatedAt:    now,
	}
	account.Balance = newBalance
	account.UpdatedAt = now

	if err := uc.repo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBalance(account); err != nil {
		return nil, err
	}
	return toBankTransactionResponse(tx), nil
}

// ListTransactions lista los movimientos de una cuenta, el más reciente primero.
func (uc *BankAccountUseCase) ListTransactions(accountID string, limit, offset int) ([]*dto.BankTransactionResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListTransactions(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BankTransactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, toBankTransactionResponse(tx))
	}
	return out, nil
}

func toBankAccountResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		ID:            a.ID,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Currency:      a.Currency,
		Balance:       a.Balance,
	}
}

func toBankTransactionResponse(tx *entity.BankTransaction) *dto.BankTransactionResponse {
	return &dto.BankTransactionResponse{
		ID:           tx.ID,
		AccountID:    tx.AccountID,
		Type:         tx.Type,
		Amount:       tx.Amount,
		Description:  tx.Description,
		BalanceAfter: tx.BalanceAfter,
		Date:         tx.CreatedAt.Format(time.RFC3339),
	}
}
