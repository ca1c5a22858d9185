package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/corebank/internal/adapter/http/dto"
	"github.com/finvault/corebank/internal/domain"
	"github.com/finvault/corebank/internal/usecase"
)

type ledgerServiceStub struct {
	depositFn  func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
	withdrawFn func(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error)
	transferFn func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error)
}

func (s *ledgerServiceStub) Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
	return s.depositFn(ctx, input)
}

func (s *ledgerServiceStub) Withdraw(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error) {
	return s.withdrawFn(ctx, input)
}

func (s *ledgerServiceStub) Transfer(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
	return s.transferFn(ctx, input)
}

func completedTransaction(txType domain.TransactionType) *domain.Transaction {
	now := time.Now()
	number := "482910375566"
	balance := decimal.NewFromInt(400)

	txn := &domain.Transaction{
		ID:          "txn-1",
		Number:      "TXN-1234567890123456",
		Type:        txType,
		Status:      domain.TransactionStatusCompleted,
		Amount:      decimal.NewFromInt(100),
		CreatedAt:   now,
		CompletedAt: &now,
	}

	switch txType {
	case domain.TransactionTypeDeposit:
		txn.ToAccountNumber = &number
		txn.ToBalanceAfter = &balance
	case domain.TransactionTypeWithdrawal:
		txn.FromAccountNumber = &number
		txn.FromBalanceAfter = &balance
	default:
		txn.FromAccountNumber = &number
		txn.FromBalanceAfter = &balance
	}

	return txn
}

func TestLedgerHandler_Deposit_Success(t *testing.T) {
	var captured usecase.DepositInput
	h := NewLedgerHandler(&ledgerServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
			captured = input
			return completedTransaction(domain.TransactionTypeDeposit), nil
		},
	}, nil)

	body := `{"accountId":"acc-1","amount":100.50,"description":"payday"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/operations/deposit", strings.NewReader(body)), "cust-1")
	rec := httptest.NewRecorder()

	h.Deposit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.OwnerID != "cust-1" || captured.AccountID != "acc-1" {
		t.Fatalf("expected caller identity on input, got %+v", captured)
	}
	if !captured.Amount.Equal(decimal.RequireFromString("100.50")) {
		t.Fatalf("expected amount 100.50, got %s", captured.Amount)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ToAccountNumber == nil || *resp.ToAccountNumber != "482910375566" {
		t.Fatalf("expected destination account number, got %+v", resp)
	}
}

func TestLedgerHandler_Deposit_Unauthenticated(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
			t.Fatal("Deposit should not be called without a customer")
			return nil, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/operations/deposit", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.Deposit(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLedgerHandler_Withdraw_InsufficientFunds(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error) {
			return nil, domain.ErrInsufficientFunds
		},
	}, nil)

	body := `{"accountId":"acc-1","amount":5000}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/operations/withdraw", strings.NewReader(body)), "cust-1")
	rec := httptest.NewRecorder()

	h.Withdraw(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestLedgerHandler_Withdraw_Success(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error) {
			return completedTransaction(domain.TransactionTypeWithdrawal), nil
		},
	}, nil)

	body := `{"accountId":"acc-1","amount":100}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/operations/withdraw", strings.NewReader(body)), "cust-1")
	rec := httptest.NewRecorder()

	h.Withdraw(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Amounts go over the wire as bare numbers.
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"amount":100.00`)) {
		t.Fatalf("expected bare-number amount, got %s", rec.Body.String())
	}
}

func TestLedgerHandler_Transfer_Success(t *testing.T) {
	var captured usecase.TransferInput
	h := NewLedgerHandler(&ledgerServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
			captured = input
			return completedTransaction(domain.TransactionTypeTransfer), nil
		},
	}, nil)

	body := `{"fromAccountId":"acc-1","toAccountNumber":"987654321098","amount":25.75,"description":"rent"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/operations/transfer", strings.NewReader(body)), "cust-1")
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.ToAccountNumber != "987654321098" {
		t.Fatalf("expected destination number on input, got %+v", captured)
	}
	if !captured.Amount.Equal(decimal.RequireFromString("25.75")) {
		t.Fatalf("expected amount 25.75, got %s", captured.Amount)
	}
}

func TestLedgerHandler_Transfer_DestinationNotFound(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
			return nil, domain.ErrDestinationNotFound
		},
	}, nil)

	body := `{"fromAccountId":"acc-1","toAccountNumber":"000000000000","amount":10}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/operations/transfer", strings.NewReader(body)), "cust-1")
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLedgerHandler_Transfer_InvalidJSON(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
			t.Fatal("Transfer should not be called for invalid payload")
			return nil, nil
		},
	}, nil)

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/operations/transfer", strings.NewReader("{oops")), "cust-1")
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
