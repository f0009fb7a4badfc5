package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

func TestStoreCreateGetDelete(t *testing.T) {
	store := NewStore(time.Hour, 0, logger.NewNop())
	defer store.Close()

	userID := uuid.New()
	sess := store.Create(userID)
	assert.Equal(t, userID, sess.UserID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	store.Delete(sess.ID)
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestGetUnknownSession(t *testing.T) {
	store := NewStore(time.Hour, 0, logger.NewNop())
	defer store.Close()

	_, err := store.Get(uuid.New())
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestIdleSessionsAreEvicted(t *testing.T) {
	store := NewStore(time.Minute, 0, logger.NewNop())
	defer store.Close()

	stale := store.Create(uuid.New())
	fresh := store.Create(uuid.New())

	// Age the first session past the TTL by hand.
	stale.touch(time.Now().Add(-2 * time.Minute))
	store.evictIdle(time.Now())

	_, err := store.Get(stale.ID)
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	store := NewStore(time.Minute, 0, logger.NewNop())
	defer store.Close()

	sess := store.Create(uuid.New())
	sess.touch(time.Now().Add(-2 * time.Minute))

	// A Get counts as activity, so the sweep right after keeps it.
	_, err := store.Get(sess.ID)
	assert.NoError(t, err)
	store.evictIdle(time.Now())
	_, err = store.Get(sess.ID)
	assert.NoError(t, err)
}

func TestSessionMachines(t *testing.T) {
	store := NewStore(time.Hour, 0, logger.NewNop())
	defer store.Close()

	sess := store.Create(uuid.New())
	_, ok := sess.Machine("airtime")
	assert.False(t, ok)

	sess.PutMachine("airtime", nil)
	_, ok = sess.Machine("airtime")
	assert.True(t, ok)
	assert.Equal(t, []string{"airtime"}, sess.Flows())

	sess.RemoveMachine("airtime")
	_, ok = sess.Machine("airtime")
	assert.False(t, ok)
	assert.Empty(t, sess.Flows())
}
