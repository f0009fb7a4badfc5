package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/JoelOnyedika/flutterpay/pkg/errors"
)

// IdempotencyMiddleware enforces Idempotency-Key usage for unsafe
// methods and replays the captured response on retries. A double-click
// on Confirm lands here before it can reach the settlement engine.
type IdempotencyMiddleware struct {
	ttl time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
	cached   map[string]*capturedResponse
}

type capturedResponse struct {
	status   int
	body     []byte
	headers  map[string]string
	storedAt time.Time
}

func NewIdempotencyMiddleware(ttl time.Duration) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{
		ttl:      ttl,
		inflight: make(map[string]struct{}),
		cached:   make(map[string]*capturedResponse),
	}
}

// Require blocks duplicate POST/PUT/PATCH/DELETE requests with the same
// Idempotency-Key. The first request runs; an identical retry gets the
// first one's response, and a concurrent duplicate waits briefly for it.
func (m *IdempotencyMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut &&
			r.Method != http.MethodPatch && r.Method != http.MethodDelete {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get("Idempotency-Key")
		if key == "" {
			http.Error(w, "Idempotency-Key header required", http.StatusBadRequest)
			return
		}
		key = r.Method + ":" + key

		if m.replay(w, key) {
			return
		}

		if !m.acquire(key) {
			// Another request with this key is in flight; wait for its
			// response so double-clicks do not surface as errors.
			deadline := time.Now().Add(5 * time.Second)
			for time.Now().Before(deadline) {
				time.Sleep(100 * time.Millisecond)
				if m.replay(w, key) {
					return
				}
			}
			http.Error(w, errors.ErrDuplicateRequest.Error(), http.StatusConflict)
			return
		}
		defer m.release(key)

		cw := newCaptureWriter(w, 1<<20)
		next.ServeHTTP(cw, r)
		m.store(key, cw)
	})
}

func (m *IdempotencyMiddleware) replay(w http.ResponseWriter, key string) bool {
	m.mu.Lock()
	cr, ok := m.cached[key]
	if ok && time.Since(cr.storedAt) > m.ttl {
		delete(m.cached, key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return false
	}

	for k, v := range cr.headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(cr.status)
	_, _ = w.Write(cr.body)
	return true
}

func (m *IdempotencyMiddleware) acquire(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.inflight[key]; busy {
		return false
	}
	m.inflight[key] = struct{}{}
	return true
}

func (m *IdempotencyMiddleware) release(key string) {
	m.mu.Lock()
	delete(m.inflight, key)
	m.mu.Unlock()
}

func (m *IdempotencyMiddleware) store(key string, cw *captureWriter) {
	if cw.status == 0 || len(cw.buf) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached[key] = &capturedResponse{
		status:   cw.status,
		body:     cw.buf,
		headers:  cw.headers,
		storedAt: time.Now(),
	}

	// Drop expired entries while we hold the lock.
	for k, cr := range m.cached {
		if time.Since(cr.storedAt) > m.ttl {
			delete(m.cached, k)
		}
	}
}

type captureWriter struct {
	http.ResponseWriter
	buf     []byte
	limit   int
	status  int
	headers map[string]string
}

func newCaptureWriter(w http.ResponseWriter, limit int) *captureWriter {
	return &captureWriter{
		ResponseWriter: w,
		buf:            make([]byte, 0, 1024),
		limit:          limit,
		headers:        make(map[string]string),
	}
}

func (w *captureWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	for k, v := range w.ResponseWriter.Header() {
		if len(v) > 0 {
			w.headers[k] = v[0]
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *captureWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	if len(w.buf) < w.limit {
		space := w.limit - len(w.buf)
		toCopy := len(p)
		if toCopy > space {
			toCopy = space
		}
		w.buf = append(w.buf, p[:toCopy]...)
	}
	return w.ResponseWriter.Write(p)
}
