package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies what kind of account a customer holds.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
)

var validAccountTypes = map[AccountType]bool{
	AccountTypeChecking:   true,
	AccountTypeSavings:    true,
	AccountTypeInvestment: true,
}

// IsValid checks if the account type is known.
func (t AccountType) IsValid() bool {
	return validAccountTypes[t]
}

// AccountStatus is the lifecycle state of an account. Accounts are never
// deleted; they transition to frozen or closed.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusFrozen AccountStatus = "frozen"
	AccountStatusClosed AccountStatus = "closed"
)

// IsValid checks if the status is known.
func (s AccountStatus) IsValid() bool {
	return s == AccountStatusActive || s == AccountStatusFrozen || s == AccountStatusClosed
}

// Account represents a customer account holding a monetary balance.
// Balance mutations happen only inside the ledger use case's atomic unit.
type Account struct {
	ID        string
	OwnerID   string
	Number    string
	Type      AccountType
	Currency  string
	Balance   decimal.Decimal
	Status    AccountStatus
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the account accepts balance operations.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// ValidateDebit checks if the account can be debited by amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	return nil
}

// ValidateCredit checks if the account can be credited.
func (a *Account) ValidateCredit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	return nil
}

// ApplyDebit returns the balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// CanTransitionTo checks a status change. Closed is terminal.
func (a *Account) CanTransitionTo(status AccountStatus) bool {
	if !status.IsValid() || a.Status == status {
		return false
	}

	return a.Status != AccountStatusClosed
}
