package session

import (
	"sync"
	"time"
)

// Store abstracts session bag CRUD so that sessions can be stored in-memory
// (default) or in shared backing storage.
type Store interface {
	// Get retrieves a session by token. Returns false if the session does
	// not exist or has expired.
	Get(token string) (Session, bool)

	// Put creates or updates the session stored under the given token.
	Put(token string, session Session)

	// Delete removes a session by token. The logout contract surfaces a
	// failure here as an internal error, so implementations backed by
	// external storage must report theirs.
	Delete(token string) error
}

// MemoryStore is the process-local [Store]: a mutex-guarded map. Expired
// sessions are dropped lazily on read.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (s *MemoryStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}

	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Session{}, false
	}

	return sess, true
}

func (s *MemoryStore) Put(token string, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session
}

func (s *MemoryStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len reports the number of stored sessions, including any expired entries
// not yet dropped by a read.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
