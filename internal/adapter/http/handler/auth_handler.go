package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finvault/corebank/internal/adapter/http/dto"
	"github.com/finvault/corebank/internal/domain"
	"github.com/finvault/corebank/internal/infrastructure/auth"
	"github.com/finvault/corebank/internal/infrastructure/metrics"
	"github.com/finvault/corebank/internal/usecase"
)

// CustomerService defines the behavior needed by AuthHandler.
type CustomerService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.Customer, error)
	Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.Customer, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	customerUC CustomerService
	jwtManager *auth.JWTManager
	metrics    *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(customerUC CustomerService, jwtManager *auth.JWTManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		customerUC: customerUC,
		jwtManager: jwtManager,
		metrics:    m,
	}
}

// Register creates a customer account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "registration failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(customer))
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.Authenticate(r.Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.observeAuth("failure")
		writeDomainError(w, "login failed", err)
		return
	}

	token, err := h.jwtManager.Generate(customer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	h.observeAuth("success")
	writeJSON(w, http.StatusOK, dto.TokenResponse{
		Token:    token,
		Customer: dto.CustomerFromDomain(customer),
	})
}

func (h *AuthHandler) observeAuth(status string) {
	if h.metrics == nil {
		return
	}

	h.metrics.AuthAttempts.WithLabelValues(status).Inc()
}
