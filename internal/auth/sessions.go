package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "concentribe_session"

// SessionTTL is how long a session stays valid. One week, matching the
// login cookie lifetime.
const SessionTTL = 7 * 24 * time.Hour

type session struct {
	userID    int64
	expiresAt time.Time
}

// SessionStore keeps sessions in memory. Tokens are random UUIDs; expired
// entries are dropped on access and by Prune.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session),
		ttl:      SessionTTL,
	}
}

// Create issues a new session token for the user.
func (s *SessionStore) Create(userID int64) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Get resolves a token to a user ID. Expired tokens are removed and report
// as absent.
func (s *SessionStore) Get(token string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return 0, false
	}
	return sess.userID, true
}

// Delete removes a session, logging the user out.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Prune drops all expired sessions and returns how many were removed.
func (s *SessionStore) Prune() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
