package dto

import (
	"time"

	"github.com/finvault/corebank/internal/domain"
	"github.com/finvault/corebank/internal/usecase"
)

// RegisterRequest represents a customer registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	Type           string `json:"type"`
	Currency       string `json:"currency"`
	InitialDeposit Money  `json:"initialDeposit"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *OpenAccountRequest) ToUseCaseInput(ownerID string) usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		OwnerID:        ownerID,
		Type:           domain.AccountType(r.Type),
		Currency:       r.Currency,
		InitialDeposit: r.InitialDeposit.Decimal,
	}
}

// UpdateStatusRequest represents an account status change request.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// DepositRequest represents a deposit request.
type DepositRequest struct {
	AccountID   string `json:"accountId"`
	Amount      Money  `json:"amount"`
	Description string `json:"description"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *DepositRequest) ToUseCaseInput(ownerID string) usecase.DepositInput {
	return usecase.DepositInput{
		AccountID:   r.AccountID,
		OwnerID:     ownerID,
		Amount:      r.Amount.Decimal,
		Description: r.Description,
	}
}

// WithdrawRequest represents a withdrawal request.
type WithdrawRequest struct {
	AccountID   string `json:"accountId"`
	Amount      Money  `json:"amount"`
	Description string `json:"description"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *WithdrawRequest) ToUseCaseInput(ownerID string) usecase.WithdrawInput {
	return usecase.WithdrawInput{
		AccountID:   r.AccountID,
		OwnerID:     ownerID,
		Amount:      r.Amount.Decimal,
		Description: r.Description,
	}
}

// TransferRequest represents a transfer request. The destination is addressed
// by its external account number, not its internal id.
type TransferRequest struct {
	FromAccountID   string `json:"fromAccountId"`
	ToAccountNumber string `json:"toAccountNumber"`
	Amount          Money  `json:"amount"`
	Description     string `json:"description"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *TransferRequest) ToUseCaseInput(ownerID string) usecase.TransferInput {
	return usecase.TransferInput{
		FromAccountID:   r.FromAccountID,
		OwnerID:         ownerID,
		ToAccountNumber: r.ToAccountNumber,
		Amount:          r.Amount.Decimal,
		Description:     r.Description,
	}
}

// StatementRequest represents the statement query parameters.
type StatementRequest struct {
	AccountID string
	StartDate time.Time
	EndDate   time.Time
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *StatementRequest) ToUseCaseInput(ownerID string) usecase.GetStatementInput {
	return usecase.GetStatementInput{
		AccountID: r.AccountID,
		OwnerID:   ownerID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}
