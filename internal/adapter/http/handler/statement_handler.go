package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finvault/corebank/internal/adapter/http/dto"
	"github.com/finvault/corebank/internal/adapter/http/middleware"
	"github.com/finvault/corebank/internal/domain"
	"github.com/finvault/corebank/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	GetStatement(ctx context.Context, input usecase.GetStatementInput) (*domain.Statement, error)
}

// StatementHandler serves account statements.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get returns the account's statement for the period in the startDate and
// endDate query parameters (RFC 3339 or plain dates).
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	accountID := chi.URLParam(r, "id")

	start, err := parseDateQuery(r, "startDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate", err.Error())
		return
	}

	end, err := parseDateQuery(r, "endDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate", err.Error())
		return
	}

	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "invalid period", "endDate before startDate")
		return
	}

	statement, err := h.statementUC.GetStatement(r.Context(), usecase.GetStatementInput{
		AccountID: accountID,
		OwnerID:   customer.ID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		writeDomainError(w, "failed to build statement", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}

func parseDateQuery(r *http.Request, key string) (time.Time, error) {
	val := r.URL.Query().Get(key)

	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", val)
}
