package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/corebank/internal/domain"
)

// StatementUseCase derives account statements from the transaction log. It
// only reads; it never calls the ledger.
type StatementUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(accountRepo AccountRepository, transactionRepo TransactionRepository) *StatementUseCase {
	return &StatementUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// GetStatementInput represents input for generating a statement.
type GetStatementInput struct {
	AccountID string
	OwnerID   string
	StartDate time.Time
	EndDate   time.Time
}

// GetStatement aggregates the account's completed transactions over the
// period. The closing balance is the account's current balance; the opening
// balance is reconstructed from the period's flows.
func (uc *StatementUseCase) GetStatement(ctx context.Context, input GetStatementInput) (*domain.Statement, error) {
	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if account.OwnerID != input.OwnerID {
		return nil, domain.ErrUnauthorized
	}

	transactions, err := uc.transactionRepo.ListByAccountAndPeriod(ctx, input.AccountID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	totalDeposits := decimal.Zero
	totalWithdrawals := decimal.Zero

	for _, txn := range transactions {
		if txn.ToAccountID != nil && *txn.ToAccountID == account.ID {
			totalDeposits = totalDeposits.Add(txn.Amount)
		}

		if txn.FromAccountID != nil && *txn.FromAccountID == account.ID {
			totalWithdrawals = totalWithdrawals.Add(txn.Amount)
		}
	}

	closing := account.Balance
	opening := closing.Sub(totalDeposits).Add(totalWithdrawals)

	return &domain.Statement{
		Account:          account,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		OpeningBalance:   opening,
		ClosingBalance:   closing,
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		Transactions:     transactions,
	}, nil
}
