package notification

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

func toast(title string) domain.Toast {
	return domain.Toast{
		ID:        uuid.New(),
		Title:     title,
		Severity:  domain.ToastDefault,
		CreatedAt: time.Now(),
	}
}

func TestPushAndDrain(t *testing.T) {
	hub := NewHub(logger.NewNop())
	sessionID := uuid.New()

	hub.Push(sessionID, toast("first"))
	hub.Push(sessionID, toast("second"))

	drained := hub.Drain(sessionID)
	assert.Len(t, drained, 2)
	assert.Equal(t, "first", drained[0].Title)
	assert.Equal(t, "second", drained[1].Title)

	// Draining clears the buffer.
	assert.Empty(t, hub.Drain(sessionID))
}

func TestDrainUnknownSessionIsEmptyNotNil(t *testing.T) {
	hub := NewHub(logger.NewNop())

	drained := hub.Drain(uuid.New())
	assert.NotNil(t, drained)
	assert.Empty(t, drained)
}

func TestBufferIsBounded(t *testing.T) {
	hub := NewHub(logger.NewNop())
	sessionID := uuid.New()

	for i := 0; i < maxBuffered+25; i++ {
		hub.Push(sessionID, toast(fmt.Sprintf("toast-%d", i)))
	}

	drained := hub.Drain(sessionID)
	assert.Len(t, drained, maxBuffered)
	// The oldest entries fell off the front.
	assert.Equal(t, "toast-25", drained[0].Title)
}

func TestNotifierPushesToSession(t *testing.T) {
	hub := NewHub(logger.NewNop())
	sessionID := uuid.New()

	hub.Notifier(sessionID)(toast("via notifier"))

	drained := hub.Drain(sessionID)
	assert.Len(t, drained, 1)
	assert.Equal(t, "via notifier", drained[0].Title)
}

func TestWebsocketReceivesPushedToasts(t *testing.T) {
	hub := NewHub(logger.NewNop())
	sessionID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, sessionID)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer conn.Close()

	hub.Push(sessionID, toast("live"))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var got domain.Toast
	assert.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "live", got.Title)
}

func TestForgetDropsState(t *testing.T) {
	hub := NewHub(logger.NewNop())
	sessionID := uuid.New()

	hub.Push(sessionID, toast("gone"))
	hub.Forget(sessionID)
	assert.Empty(t, hub.Drain(sessionID))
}
