package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		expectError error
	}{
		{"positive amount", decimal.NewFromInt(100), nil},
		{"zero amount", decimal.Zero, ErrInvalidAmount},
		{"negative amount", decimal.NewFromInt(-100), ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := &Transaction{Amount: tt.amount}

			err := txn.Validate()

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && err != tt.expectError {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestTransaction_Lifecycle(t *testing.T) {
	now := time.Now().UTC()

	completed := &Transaction{Status: TransactionStatusPending}
	completed.Complete(now)

	if completed.Status != TransactionStatusCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(now) {
		t.Errorf("expected CompletedAt %v, got %v", now, completed.CompletedAt)
	}

	failed := &Transaction{Status: TransactionStatusPending}
	failed.Fail()

	if failed.Status != TransactionStatusFailed {
		t.Errorf("expected failed, got %s", failed.Status)
	}
	if failed.CompletedAt != nil {
		t.Error("failed transaction must not carry a completion time")
	}
}

func TestTransaction_Touches(t *testing.T) {
	from := "acc-1"
	to := "acc-2"
	txn := &Transaction{FromAccountID: &from, ToAccountID: &to}

	if !txn.Touches("acc-1") || !txn.Touches("acc-2") {
		t.Error("expected transaction to touch both sides")
	}
	if txn.Touches("acc-3") {
		t.Error("expected transaction not to touch unrelated account")
	}

	deposit := &Transaction{ToAccountID: &to}
	if deposit.Touches("acc-1") {
		t.Error("deposit has no source side")
	}
	if !deposit.Touches("acc-2") {
		t.Error("deposit must touch its destination")
	}
}
