package domain

import "errors"

var (
	// Account errors
	ErrOwnerNotFound       = errors.New("owner not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNotActive    = errors.New("account is not active")
	ErrInvalidAccountType  = errors.New("invalid account type")
	ErrInvalidStatusChange = errors.New("invalid account status transition")

	// Ledger errors
	ErrDestinationNotFound = errors.New("destination account not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrCurrencyMismatch    = errors.New("cannot transfer between different currencies")
	ErrConcurrencyConflict = errors.New("concurrent balance update conflict")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
)
