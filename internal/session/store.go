// Package session owns per-visitor state: one cart and an optional signed-in
// user per session. Sessions are explicit objects passed to whoever needs
// them; there are no ambient singletons, so every component stays testable
// with injected state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agromarket-cm/agromarket/internal/cart"
	"github.com/agromarket-cm/agromarket/internal/domain"
)

// DefaultTTL is how long an idle session survives before the janitor
// reclaims it.
const DefaultTTL = 30 * 24 * time.Hour

// ErrSessionNotFound is returned when a session identifier is unknown or
// has expired.
var ErrSessionNotFound = &domain.Error{Code: domain.ENOTFOUND, Message: "Session not found"}

// Session is one visitor's state. The cart serializes its own mutations;
// the user pointer is guarded here.
type Session struct {
	ID        string
	Cart      *cart.Cart
	CreatedAt time.Time

	mu       sync.RWMutex
	user     *domain.User
	lastSeen time.Time
}

// User returns the signed-in user, or nil for a guest session.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser attaches a user identity to the session.
func (s *Session) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// ClearUser signs the session out, keeping the cart.
func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen) > ttl
}

// Store is the in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a session store. A non-positive ttl falls back to
// DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// GetOrCreate returns the session for id, creating a fresh one (with a new
// identifier) when id is empty or unknown. The returned session's ID is
// what the cookie must carry.
func (s *Store) GetOrCreate(id string) *Session {
	now := s.now()

	if id != "" {
		s.mu.RLock()
		sess, ok := s.sessions[id]
		s.mu.RUnlock()
		if ok && !sess.expired(now, s.ttl) {
			sess.touch(now)
			return sess
		}
	}

	sess := &Session{
		ID:        uuid.New().String(),
		Cart:      cart.New(),
		CreatedAt: now,
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns an existing, unexpired session.
func (s *Store) Get(id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || sess.expired(s.now(), s.ttl) {
		return nil, ErrSessionNotFound
	}
	sess.touch(s.now())
	return sess, nil
}

// Delete tears a session down; no-op when absent.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PruneExpired drops every expired session and reports how many went.
// Intended to run from a periodic janitor goroutine.
func (s *Store) PruneExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}
