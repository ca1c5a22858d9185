package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/finvault/corebank/internal/domain"
)

// LedgerUseCase is the transfer engine: every balance-changing operation runs
// through it as one atomic unit of work. Deposit, Withdraw and Transfer each
// build a balance mutation plan (credit one account, debit one account, or
// move between two) which a single apply routine executes inside a database
// transaction with row locks taken in deterministic order.
type LedgerUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	retrier         Retrier
	idGen           IDGenerator
	numberGen       NumberGenerator
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	retrier Retrier,
	idGen IDGenerator,
	numberGen NumberGenerator,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		retrier:         retrier,
		idGen:           idGen,
		numberGen:       numberGen,
	}
}

type mutationKind int

const (
	mutationCredit mutationKind = iota
	mutationDebit
	mutationMove
)

// mutationPlan describes one balance mutation to be applied atomically.
// accountID is the credited account for a credit, the debited account for a
// debit, and the source for a move; destinationID is set only for a move.
type mutationPlan struct {
	kind          mutationKind
	txType        domain.TransactionType
	ownerID       string
	accountID     string
	destinationID string
	amount        decimal.Decimal
	description   string
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	AccountID   string
	OwnerID     string
	Amount      decimal.Decimal
	Description string
}

// Deposit credits an account. Money enters the system boundary, so the
// recorded transaction has no source side.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	return uc.execute(ctx, mutationPlan{
		kind:        mutationCredit,
		txType:      domain.TransactionTypeDeposit,
		ownerID:     input.OwnerID,
		accountID:   input.AccountID,
		amount:      input.Amount,
		description: input.Description,
	})
}

// WithdrawInput represents input for a withdrawal.
type WithdrawInput struct {
	AccountID   string
	OwnerID     string
	Amount      decimal.Decimal
	Description string
}

// Withdraw debits an account, failing with ErrInsufficientFunds when the
// balance does not cover the amount. Withdrawing the exact balance is valid
// and drains the account to zero.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	return uc.execute(ctx, mutationPlan{
		kind:        mutationDebit,
		txType:      domain.TransactionTypeWithdrawal,
		ownerID:     input.OwnerID,
		accountID:   input.AccountID,
		amount:      input.Amount,
		description: input.Description,
	})
}

// TransferInput represents input for a transfer.
type TransferInput struct {
	FromAccountID   string
	OwnerID         string
	ToAccountNumber string
	Amount          decimal.Decimal
	Description     string
}

// Transfer moves amount from the caller's account to the account identified
// by number, which may belong to any owner. Both balance mutations and the
// transaction record commit as one unit; on any failure neither balance
// changes. A transfer to the source account itself is accepted, leaves the
// balance untouched and is still recorded.
func (uc *LedgerUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	// Resolve the destination up front to learn its id for lock ordering.
	// Existence and status are re-checked under lock.
	destination, err := uc.accountRepo.GetByNumber(ctx, input.ToAccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrDestinationNotFound
		}

		return nil, err
	}

	return uc.execute(ctx, mutationPlan{
		kind:          mutationMove,
		txType:        domain.TransactionTypeTransfer,
		ownerID:       input.OwnerID,
		accountID:     input.FromAccountID,
		destinationID: destination.ID,
		amount:        input.Amount,
		description:   input.Description,
	})
}

// execute runs the plan through the bounded retrier. Validation failures that
// occurred after the accounts were loaded leave a failed transaction behind
// for audit; balances are untouched on every error path.
func (uc *LedgerUseCase) execute(ctx context.Context, plan mutationPlan) (*domain.Transaction, error) {
	var txn *domain.Transaction

	err := uc.retrier.Retry(ctx, func() error {
		applied, applyErr := uc.applyOnce(ctx, plan)
		if applyErr != nil {
			return applyErr
		}

		txn = applied

		return nil
	})
	if err != nil {
		uc.recordFailure(ctx, plan, err)
		return nil, err
	}

	return txn, nil
}

// applyOnce executes the plan inside a single database transaction: lock the
// touched accounts in ascending id order, validate, write both the balance
// updates and the log entry, commit.
func (uc *LedgerUseCase) applyOnce(ctx context.Context, plan mutationPlan) (*domain.Transaction, error) {
	lockIDs := plan.lockOrder()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, lockIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	account := byID[plan.accountID]
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	if account.OwnerID != plan.ownerID {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()

	txn := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Number:      uc.numberGen.TransactionNumber(),
		Type:        plan.txType,
		Status:      domain.TransactionStatusPending,
		Amount:      plan.amount,
		Description: plan.description,
		CreatedAt:   now,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	switch plan.kind {
	case mutationCredit:
		if err := uc.applyCredit(ctx, tx, account, txn, now); err != nil {
			return nil, err
		}

	case mutationDebit:
		if err := uc.applyDebit(ctx, tx, account, txn, now); err != nil {
			return nil, err
		}

	case mutationMove:
		destination := byID[plan.destinationID]
		if destination == nil {
			return nil, domain.ErrDestinationNotFound
		}

		if err := uc.applyMove(ctx, tx, account, destination, txn, now); err != nil {
			return nil, err
		}
	}

	txn.Complete(now)

	if err := uc.transactionRepo.Append(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

func (uc *LedgerUseCase) applyCredit(ctx context.Context, tx Transaction, account *domain.Account, txn *domain.Transaction, now time.Time) error {
	if err := account.ValidateCredit(txn.Amount); err != nil {
		return err
	}

	newBalance := account.ApplyCredit(txn.Amount)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, account.Version, now); err != nil {
		return err
	}

	txn.ToAccountID = &account.ID
	txn.ToAccountNumber = &account.Number
	txn.ToBalanceAfter = &newBalance

	return nil
}

func (uc *LedgerUseCase) applyDebit(ctx context.Context, tx Transaction, account *domain.Account, txn *domain.Transaction, now time.Time) error {
	if err := account.ValidateDebit(txn.Amount); err != nil {
		return err
	}

	newBalance := account.ApplyDebit(txn.Amount)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, account.Version, now); err != nil {
		return err
	}

	txn.FromAccountID = &account.ID
	txn.FromAccountNumber = &account.Number
	txn.FromBalanceAfter = &newBalance

	return nil
}

func (uc *LedgerUseCase) applyMove(ctx context.Context, tx Transaction, source, destination *domain.Account, txn *domain.Transaction, now time.Time) error {
	if source.Currency != destination.Currency {
		return domain.ErrCurrencyMismatch
	}

	txn.FromAccountID = &source.ID
	txn.ToAccountID = &destination.ID
	txn.FromAccountNumber = &source.Number
	txn.ToAccountNumber = &destination.Number

	if source.ID == destination.ID {
		// Self-transfer: a balance no-op, still logged with equal snapshots.
		balance := source.Balance
		txn.FromBalanceAfter = &balance
		txn.ToBalanceAfter = &balance

		return nil
	}

	if err := source.ValidateDebit(txn.Amount); err != nil {
		return err
	}

	if err := destination.ValidateCredit(txn.Amount); err != nil {
		if errors.Is(err, domain.ErrAccountNotActive) {
			return domain.ErrDestinationNotFound
		}

		return err
	}

	sourceBalance := source.ApplyDebit(txn.Amount)
	destBalance := destination.ApplyCredit(txn.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, source.ID, sourceBalance, source.Version, now); err != nil {
		return err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, destination.ID, destBalance, destination.Version, now); err != nil {
		return err
	}

	txn.FromBalanceAfter = &sourceBalance
	txn.ToBalanceAfter = &destBalance

	return nil
}

// recordFailure appends a failed transaction for audit after the atomic unit
// rolled back. Only business rejections are recorded; storage errors are not.
// An error here is logged and swallowed so it cannot mask the original one.
func (uc *LedgerUseCase) recordFailure(ctx context.Context, plan mutationPlan, cause error) {
	switch {
	case errors.Is(cause, domain.ErrInsufficientFunds),
		errors.Is(cause, domain.ErrAccountNotActive),
		errors.Is(cause, domain.ErrCurrencyMismatch),
		errors.Is(cause, domain.ErrDestinationNotFound):
	default:
		return
	}

	txn := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Number:      uc.numberGen.TransactionNumber(),
		Type:        plan.txType,
		Amount:      plan.amount,
		Description: plan.description,
		CreatedAt:   time.Now().UTC(),
	}
	txn.Fail()

	switch plan.kind {
	case mutationCredit:
		txn.ToAccountID = &plan.accountID
	case mutationDebit:
		txn.FromAccountID = &plan.accountID
	case mutationMove:
		txn.FromAccountID = &plan.accountID
		if plan.destinationID != "" {
			txn.ToAccountID = &plan.destinationID
		}
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		log.Warn().Err(err).Str("transaction_id", txn.ID).Msg("failed to record audit transaction")
	}
}

// lockOrder returns the unique account ids touched by the plan in ascending
// order. Locking in one global order prevents deadlocks between opposing
// transfers on the same account pair.
func (p mutationPlan) lockOrder() []string {
	ids := []string{p.accountID}
	if p.kind == mutationMove && p.destinationID != p.accountID {
		ids = append(ids, p.destinationID)
	}

	sort.Strings(ids)

	return ids
}
