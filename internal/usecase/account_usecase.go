package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/corebank/internal/domain"
)

// AccountUseCase handles account identity and ownership. Balance arithmetic
// lives in LedgerUseCase.
type AccountUseCase struct {
	accountRepo  AccountRepository
	customerRepo CustomerRepository
	idGen        IDGenerator
	numberGen    NumberGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	accountRepo AccountRepository,
	customerRepo CustomerRepository,
	idGen IDGenerator,
	numberGen NumberGenerator,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		idGen:        idGen,
		numberGen:    numberGen,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	OwnerID        string
	Type           domain.AccountType
	Currency       string
	InitialDeposit decimal.Decimal
}

// OpenAccount opens a new account for an existing customer. The balance is
// seeded with the initial deposit; no transaction is recorded for it since
// the ledger only logs engine operations.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidAccountType
	}

	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	if input.InitialDeposit.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := uc.customerRepo.GetByID(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		OwnerID:   input.OwnerID,
		Number:    uc.numberGen.AccountNumber(),
		Type:      input.Type,
		Currency:  strings.ToUpper(strings.TrimSpace(input.Currency)),
		Balance:   input.InitialDeposit,
		Status:    domain.AccountStatusActive,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account owned by the caller.
func (uc *AccountUseCase) GetAccount(ctx context.Context, accountID, ownerID string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}

	return account, nil
}

// GetAccountByNumber resolves an account by its external number. The account
// may belong to any owner; transfer destinations are resolved this way.
func (uc *AccountUseCase) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, number)
}

// ListAccounts lists the caller's accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	return uc.accountRepo.ListByOwner(ctx, ownerID)
}

// UpdateStatus transitions an account between active, frozen and closed.
func (uc *AccountUseCase) UpdateStatus(ctx context.Context, accountID, ownerID string, status domain.AccountStatus) (*domain.Account, error) {
	account, err := uc.GetAccount(ctx, accountID, ownerID)
	if err != nil {
		return nil, err
	}

	if !account.CanTransitionTo(status) {
		return nil, domain.ErrInvalidStatusChange
	}

	now := time.Now().UTC()
	if err := uc.accountRepo.UpdateStatus(ctx, account.ID, status, now); err != nil {
		return nil, err
	}

	account.Status = status
	account.UpdatedAt = now

	return account, nil
}
