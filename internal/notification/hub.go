// Package notification delivers toasts. Each session has a bounded
// buffer the client can drain over HTTP, and an optional websocket that
// receives toasts as they happen.
package notification

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// maxBuffered caps the per-session backlog; the oldest toasts fall off.
const maxBuffered = 100

const writeWait = 5 * time.Second

type Hub struct {
	logger   logger.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	buffers map[uuid.UUID][]domain.Toast
	conns   map[uuid.UUID]map[*websocket.Conn]struct{}
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		logger: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The browser client runs on a different origin in dev.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		buffers: make(map[uuid.UUID][]domain.Toast),
		conns:   make(map[uuid.UUID]map[*websocket.Conn]struct{}),
	}
}

// Notifier returns the push callback for one session, in the shape flow
// machines expect.
func (h *Hub) Notifier(sessionID uuid.UUID) func(domain.Toast) {
	return func(t domain.Toast) { h.Push(sessionID, t) }
}

// Push buffers a toast and fans it out to the session's sockets.
func (h *Hub) Push(sessionID uuid.UUID, toast domain.Toast) {
	h.mu.Lock()
	buf := append(h.buffers[sessionID], toast)
	if len(buf) > maxBuffered {
		buf = buf[len(buf)-maxBuffered:]
	}
	h.buffers[sessionID] = buf

	var stale []*websocket.Conn
	for conn := range h.conns[sessionID] {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(toast); err != nil {
			stale = append(stale, conn)
		}
	}
	for _, conn := range stale {
		delete(h.conns[sessionID], conn)
	}
	h.mu.Unlock()

	for _, conn := range stale {
		conn.Close()
	}
}

// Drain returns the buffered toasts and clears the buffer.
func (h *Hub) Drain(sessionID uuid.UUID) []domain.Toast {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf := h.buffers[sessionID]
	delete(h.buffers, sessionID)
	if buf == nil {
		buf = []domain.Toast{}
	}
	return buf
}

// Forget drops everything held for a session.
func (h *Hub) Forget(sessionID uuid.UUID) {
	h.mu.Lock()
	conns := h.conns[sessionID]
	delete(h.conns, sessionID)
	delete(h.buffers, sessionID)
	h.mu.Unlock()

	for conn := range conns {
		conn.Close()
	}
}

// ServeWS upgrades the request and streams the session's toasts until
// the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", map[string]interface{}{
			"session_id": sessionID.String(),
			"error":      err.Error(),
		})
		return
	}

	h.mu.Lock()
	if h.conns[sessionID] == nil {
		h.conns[sessionID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[sessionID][conn] = struct{}{}
	h.mu.Unlock()

	// The client never sends anything meaningful; the read loop exists
	// to notice the disconnect.
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.conns[sessionID], conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
