package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openlot/leadhub/pkg/util"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Auth is a middleware factory that returns a new bearer-token middleware.
// An absent token is a 401; a present but invalid or expired token is a 403.
func Auth(jwtSecret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Unauthorized: bearer token required", http.StatusUnauthorized)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "Unauthorized: bearer token required", http.StatusUnauthorized)
				return
			}

			claims, err := util.ValidateToken(tokenString, jwtSecret)
			if err != nil {
				logger.Warn("rejected bearer token", "remote_addr", r.RemoteAddr, "error", err)
				http.Error(w, "Forbidden: invalid or expired token", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the token claims stored by Auth, or nil when
// the request did not pass through it.
func ClaimsFromContext(ctx context.Context) *util.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*util.Claims)
	return claims
}
