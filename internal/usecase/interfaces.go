package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/corebank/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus, updatedAt time.Time) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error)
}

// TransactionRepository defines data access for the append-only transaction
// log. Append runs inside the ledger's atomic unit; Create is the standalone
// variant used for failed-operation audit records.
type TransactionRepository interface {
	Append(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	Create(ctx context.Context, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
	ListByAccountAndPeriod(ctx context.Context, accountID string, start, end time.Time) ([]*domain.Transaction, error)
}

// CustomerRepository defines data access for account owners.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

// LedgerRepository defines ledger-wide read operations.
type LedgerRepository interface {
	// CheckConsistency returns the sum of all account balances and the net
	// flow recorded by completed deposits and withdrawals.
	CheckConsistency(ctx context.Context) (totalBalance, netFlow decimal.Decimal, err error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// NumberGenerator generates external-facing account and transaction numbers.
type NumberGenerator interface {
	AccountNumber() string
	TransactionNumber() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
