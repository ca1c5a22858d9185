package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the operation a transaction records.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeFee        TransactionType = "fee"
)

// TransactionStatus is the lifecycle state of a transaction. A transaction
// that reached completed or failed is a historical fact and never changes.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction is one record in the append-only log. A deposit has only the
// destination side, a withdrawal only the source side; a transfer has both.
// The balance-after snapshots capture each touched account's balance
// immediately after the operation applied. Account numbers are denormalized
// onto the record so statements stay readable without joins.
type Transaction struct {
	ID                string
	Number            string
	Type              TransactionType
	Status            TransactionStatus
	FromAccountID     *string
	ToAccountID       *string
	FromAccountNumber *string
	ToAccountNumber   *string
	Amount            decimal.Decimal
	Description       string
	FromBalanceAfter  *decimal.Decimal
	ToBalanceAfter    *decimal.Decimal
	CreatedAt         time.Time
	CompletedAt       *time.Time
}

// Validate validates the transaction amount.
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// Complete marks the transaction completed at the given time.
func (t *Transaction) Complete(at time.Time) {
	t.Status = TransactionStatusCompleted
	t.CompletedAt = &at
}

// Fail marks the transaction failed. CompletedAt stays nil: the operation
// never applied.
func (t *Transaction) Fail() {
	t.Status = TransactionStatusFailed
}

// Touches reports whether the transaction references the account on either
// side.
func (t *Transaction) Touches(accountID string) bool {
	if t.FromAccountID != nil && *t.FromAccountID == accountID {
		return true
	}

	return t.ToAccountID != nil && *t.ToAccountID == accountID
}
