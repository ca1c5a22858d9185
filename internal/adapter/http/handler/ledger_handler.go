package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finvault/corebank/internal/adapter/http/dto"
	"github.com/finvault/corebank/internal/adapter/http/middleware"
	"github.com/finvault/corebank/internal/domain"
	"github.com/finvault/corebank/internal/infrastructure/metrics"
	"github.com/finvault/corebank/internal/usecase"
)

// LedgerService defines the transfer engine behavior needed by LedgerHandler.
type LedgerService interface {
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
	Withdraw(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error)
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error)
}

// LedgerHandler handles balance-changing operations.
type LedgerHandler struct {
	ledgerUC LedgerService
	metrics  *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, metrics: m}
}

// Deposit credits an account.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.Deposit(r.Context(), req.ToUseCaseInput(customer.ID))
	if err != nil {
		h.observeFailure(domain.TransactionTypeDeposit, err)
		writeDomainError(w, "deposit failed", err)
		return
	}

	h.observeSuccess(txn)
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Withdraw debits an account.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.Withdraw(r.Context(), req.ToUseCaseInput(customer.ID))
	if err != nil {
		h.observeFailure(domain.TransactionTypeWithdrawal, err)
		writeDomainError(w, "withdrawal failed", err)
		return
	}

	h.observeSuccess(txn)
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Transfer moves money between two accounts.
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.Transfer(r.Context(), req.ToUseCaseInput(customer.ID))
	if err != nil {
		h.observeFailure(domain.TransactionTypeTransfer, err)
		writeDomainError(w, "transfer failed", err)
		return
	}

	h.observeSuccess(txn)
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

func (h *LedgerHandler) observeSuccess(txn *domain.Transaction) {
	if h.metrics == nil {
		return
	}

	h.metrics.OperationsCompleted.WithLabelValues(string(txn.Type)).Inc()
	amount, _ := txn.Amount.Float64()
	h.metrics.OperationAmount.Observe(amount)
}

func (h *LedgerHandler) observeFailure(txType domain.TransactionType, err error) {
	if h.metrics == nil {
		return
	}

	h.metrics.OperationsFailed.WithLabelValues(string(txType), failureReason(err)).Inc()
}

func failureReason(err error) string {
	switch mapDomainError(err) {
	case http.StatusUnprocessableEntity:
		return "insufficient_funds"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusForbidden:
		return "unauthorized"
	case http.StatusConflict:
		return "conflict"
	case http.StatusBadRequest:
		return "invalid"
	default:
		return "internal"
	}
}
