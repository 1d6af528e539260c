package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique-app/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminOnly(t *testing.T) {
	gate := auth.NewGate("netlify1", "test-secret")
	handler := AdminOnly(gate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, r.Context().Value(ClaimsKey))
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token passes", func(t *testing.T) {
		token, err := gate.Login("netlify1")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/orders/pending", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders/pending", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Bad token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders/pending", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(okHandler())

	t.Run("Allows bursts within the limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		for i := 0; i < burstGeneral; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Rejects once the bucket is drained", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog", nil)
		req.RemoteAddr = "10.0.0.2:1234"

		var lastCode int
		for i := 0; i < burstGeneral+5; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("Login path uses the strict tier", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/login", nil)
		req.RemoteAddr = "10.0.0.3:1234"

		var rejected bool
		for i := 0; i < burstStrict+2; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				rejected = true
			}
		}
		assert.True(t, rejected)
	})
}
