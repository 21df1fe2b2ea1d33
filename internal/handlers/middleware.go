package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/kylefourie/swiftpay-gobackend/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// Middleware gates routes behind bearer-token authentication.
type Middleware struct {
	tokens *auth.TokenService
}

func NewMiddleware(tokens *auth.TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token claims on the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, `{"error":"Access denied, token is missing!"}`, http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireEmployee is RequireAuth restricted to tokens carrying the employee
// role. Customer tokens cannot reach the review pipeline.
func (m *Middleware) RequireEmployee(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != auth.RoleEmployee {
			http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
			return
		}
		next(w, r)
	})
}

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
