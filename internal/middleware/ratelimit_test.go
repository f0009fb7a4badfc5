package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	wrapped := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	wrapped := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest("GET", "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	// A different IP has its own window.
	second := httptest.NewRequest("GET", "/", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, second)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterWindowResets(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	now := time.Now()
	assert.Equal(t, 1, rl.take("client", now))
	assert.Equal(t, 2, rl.take("client", now))

	// A new window starts fresh.
	assert.Equal(t, 1, rl.take("client", now.Add(2*time.Minute)))
}
