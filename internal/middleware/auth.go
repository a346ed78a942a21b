// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jaepaama/Employeehub/internal/auth"
	"github.com/jaepaama/Employeehub/internal/store"
)

type SessionContextKey string

const (
	EmailKey   SessionContextKey = "hub_email"
	TokenIDKey SessionContextKey = "hub_token_id"
)

// SessionValidator resolves a token ID to the email it was issued for.
type SessionValidator interface {
	Lookup(ctx context.Context, tokenID string) (string, error)
}

// Auth validates the bearer token, checks it against the live-session
// registry and the hub's current identity, and stores the session email and
// token ID in the request context.
func Auth(tokenManager *auth.TokenManager, sessions SessionValidator, hub *store.Hub) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			email, err := sessions.Lookup(r.Context(), claims.ID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Session expired")
				return
			}

			current := hub.CurrentIdentity()
			if current == nil || current.Email != email {
				respondWithError(w, http.StatusUnauthorized, "Please log in again")
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, email)
			ctx = context.WithValue(ctx, TokenIDKey, claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests from non-admin identities. The store's own
// mutations stay silent no-ops; this is the transport-level denial.
func RequireAdmin(hub *store.Hub) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hub.CurrentIdentity().IsAdmin() {
				respondWithError(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
