package usecase

import (
	"context"
	"time"

	"github.com/finvault/corebank/internal/domain"
)

// TransactionUseCase handles reads from the append-only transaction log.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository, accountRepo AccountRepository) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// GetTransaction retrieves a transaction by ID when the caller owns an
// account it touches.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id, ownerID string) (*domain.Transaction, error) {
	txn, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, accountID := range []*string{txn.FromAccountID, txn.ToAccountID} {
		if accountID == nil {
			continue
		}

		account, err := uc.accountRepo.GetByID(ctx, *accountID)
		if err != nil {
			continue
		}

		if account.OwnerID == ownerID {
			return txn, nil
		}
	}

	return nil, domain.ErrUnauthorized
}

// ListTransactionsInput represents input for listing an account's history.
type ListTransactionsInput struct {
	AccountID string
	OwnerID   string
	Limit     int
	Offset    int
}

// ListByAccount lists transactions where the account is source or
// destination, newest first.
func (uc *TransactionUseCase) ListByAccount(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if account.OwnerID != input.OwnerID {
		return nil, domain.ErrUnauthorized
	}

	if input.Limit <= 0 {
		input.Limit = defaultPageSize
	}

	if input.Limit > maxPageSize {
		input.Limit = maxPageSize
	}

	return uc.transactionRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

// ListByAccountAndPeriod lists the account's completed transactions within
// [start, end], oldest first. Ownership is the caller's responsibility; the
// statement aggregator verifies it before calling.
func (uc *TransactionUseCase) ListByAccountAndPeriod(ctx context.Context, accountID string, start, end time.Time) ([]*domain.Transaction, error) {
	return uc.transactionRepo.ListByAccountAndPeriod(ctx, accountID, start, end)
}
