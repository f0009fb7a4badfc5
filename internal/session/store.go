// Package session keeps per-user working state in memory: one session
// per login, each owning the flow machines the user has opened. Nothing
// here survives a restart, which is the intended lifetime of a draft.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoelOnyedika/flutterpay/internal/wizard"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// Session is one user's working state. Machines are created lazily when
// a flow is opened and dropped when it is closed.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	machines map[string]*wizard.Machine
}

// Machine returns the open machine for a flow, if any.
func (s *Session) Machine(flow string) (*wizard.Machine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.machines[flow]
	return m, ok
}

// PutMachine registers a machine for a flow, replacing any open one.
func (s *Session) PutMachine(flow string, m *wizard.Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machines[flow] = m
}

// RemoveMachine closes a flow.
func (s *Session) RemoveMachine(flow string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.machines, flow)
}

// Flows lists the flows with an open machine.
func (s *Session) Flows() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.machines))
	for name := range s.machines {
		out = append(out, name)
	}
	return out
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store holds live sessions and evicts the ones idle past the TTL.
type Store struct {
	ttl    time.Duration
	logger logger.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	stop chan struct{}
	once sync.Once
}

func NewStore(ttl, sweepInterval time.Duration, log logger.Logger) *Store {
	s := &Store{
		ttl:      ttl,
		logger:   log,
		sessions: make(map[uuid.UUID]*Session),
		stop:     make(chan struct{}),
	}
	if sweepInterval > 0 {
		go s.sweep(sweepInterval)
	}
	return s
}

// Create opens a session for a user.
func (s *Store) Create(userID uuid.UUID) *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		lastSeen:  now,
		machines:  make(map[string]*wizard.Machine),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Open creates a session and returns just its id, which is all the
// login path needs to mint a token.
func (s *Store) Open(userID uuid.UUID) uuid.UUID {
	return s.Create(userID).ID
}

// Get returns a live session and refreshes its idle timer.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	sess.touch(time.Now())
	return sess, nil
}

// Delete drops a session and everything it owns.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background sweeper.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictIdle(time.Now())
		}
	}
}

func (s *Store) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			s.logger.Info("session expired", map[string]interface{}{
				"session_id": id.String(),
				"user_id":    sess.UserID.String(),
			})
		}
	}
}
