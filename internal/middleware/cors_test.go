package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	h := WithCORS(next)

	t.Run("preflight answered here", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/items", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		assert.False(t, called)
	})

	t.Run("regular request passes through with headers", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		req.Header.Set("Origin", "http://example.com")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.True(t, called)
	})
}
