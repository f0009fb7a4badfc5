package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RateLimiter applies a fixed-window rate limit held in process memory.
// The service keeps all its state in memory anyway, so a shared counter
// store would guard nothing.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*rateWindow
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		windows: make(map[string]*rateWindow),
	}
}

// Limit enforces the rate limit, keyed by client IP and, when available,
// user ID.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			ip = host
		}

		key := ip
		if userID, ok := UserIDFromContext(r.Context()); ok && userID != uuid.Nil {
			key = fmt.Sprintf("%s:%s", ip, userID.String())
		}

		count := rl.take(key, time.Now())
		if count > rl.limit {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.limit))
			w.Header().Set("X-RateLimit-Remaining", "0")
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", rl.limit-count))

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) take(key string, now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[key]
	if !ok || now.After(win.resetAt) {
		win = &rateWindow{resetAt: now.Add(rl.window)}
		rl.windows[key] = win
	}
	win.count++

	// Opportunistic cleanup keeps the map from growing without bound.
	if len(rl.windows) > 10000 {
		for k, w := range rl.windows {
			if now.After(w.resetAt) {
				delete(rl.windows, k)
			}
		}
	}
	return win.count
}
