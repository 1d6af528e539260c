package middleware

import (
	"context"
	"net/http"

	"boutique-app/internal/auth"
)

type contextKey string

const ClaimsKey contextKey = "adminClaims"

// AdminOnly rejects requests that do not carry a valid admin session token.
func AdminOnly(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractToken(r)
			if tokenStr == "" {
				http.Error(w, "admin session required", http.StatusUnauthorized)
				return
			}

			claims, err := gate.Verify(tokenStr)
			if err != nil {
				http.Error(w, "invalid admin session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
