package dto

import (
	"time"

	"github.com/finvault/corebank/internal/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		Name:      c.Name,
		Role:      string(c.Role),
		CreatedAt: c.CreatedAt,
	}
}

// TokenResponse carries an issued JWT.
type TokenResponse struct {
	Token    string            `json:"token"`
	Customer *CustomerResponse `json:"customer"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	Type          string    `json:"type"`
	Currency      string    `json:"currency"`
	Balance       Money     `json:"balance"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		AccountNumber: a.Number,
		Type:          string(a.Type),
		Currency:      a.Currency,
		Balance:       NewMoney(a.Balance),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction in API responses. Accounts are
// exposed by number; internal ids stay internal.
type TransactionResponse struct {
	ID                string     `json:"id"`
	TransactionNumber string     `json:"transactionNumber"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	FromAccountNumber *string    `json:"fromAccountNumber"`
	ToAccountNumber   *string    `json:"toAccountNumber"`
	Amount            Money      `json:"amount"`
	Description       string     `json:"description,omitempty"`
	FromBalanceAfter  *Money     `json:"fromBalanceAfter,omitempty"`
	ToBalanceAfter    *Money     `json:"toBalanceAfter,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	CompletedAt       *time.Time `json:"completedAt"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                t.ID,
		TransactionNumber: t.Number,
		Type:              string(t.Type),
		Status:            string(t.Status),
		FromAccountNumber: t.FromAccountNumber,
		ToAccountNumber:   t.ToAccountNumber,
		Amount:            NewMoney(t.Amount),
		Description:       t.Description,
		FromBalanceAfter:  MoneyPtr(t.FromBalanceAfter),
		ToBalanceAfter:    MoneyPtr(t.ToBalanceAfter),
		CreatedAt:         t.CreatedAt,
		CompletedAt:       t.CompletedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// StatementResponse represents an account statement.
type StatementResponse struct {
	Account          *AccountResponse       `json:"account"`
	StartDate        time.Time              `json:"startDate"`
	EndDate          time.Time              `json:"endDate"`
	OpeningBalance   Money                  `json:"openingBalance"`
	ClosingBalance   Money                  `json:"closingBalance"`
	TotalDeposits    Money                  `json:"totalDeposits"`
	TotalWithdrawals Money                  `json:"totalWithdrawals"`
	Transactions     []*TransactionResponse `json:"transactions"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement) *StatementResponse {
	return &StatementResponse{
		Account:          AccountFromDomain(s.Account),
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		OpeningBalance:   NewMoney(s.OpeningBalance),
		ClosingBalance:   NewMoney(s.ClosingBalance),
		TotalDeposits:    NewMoney(s.TotalDeposits),
		TotalWithdrawals: NewMoney(s.TotalWithdrawals),
		Transactions:     TransactionsFromDomain(s.Transactions),
	}
}

// ConsistencyResponse reports the ledger consistency check.
type ConsistencyResponse struct {
	TotalBalance Money `json:"totalBalance"`
	NetFlow      Money `json:"netFlow"`
	Consistent   bool  `json:"consistent"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
