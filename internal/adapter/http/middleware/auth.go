package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/finvault/corebank/internal/domain"
	"github.com/finvault/corebank/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

// CustomerContextKey is the context key for the authenticated customer.
const CustomerContextKey ContextKey = "customer"

// AuthMiddleware verifies the bearer token and stores the customer identity
// on the request context.
func AuthMiddleware(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			customer := &domain.Customer{
				ID:    claims.CustomerID,
				Email: claims.Email,
				Role:  claims.Role,
			}

			ctx := context.WithValue(r.Context(), CustomerContextKey, customer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin callers.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customer, ok := CustomerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if customer.Role != domain.RoleAdmin {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CustomerFromContext extracts the authenticated customer from context.
func CustomerFromContext(ctx context.Context) (*domain.Customer, bool) {
	customer, ok := ctx.Value(CustomerContextKey).(*domain.Customer)
	return customer, ok
}
