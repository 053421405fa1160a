package otp

import (
	"sync"
	"time"
)

// Store holds pending challenges keyed by account id. Implementations must
// be safe for concurrent use with per-key atomicity: a Get never observes a
// half-written challenge, and two concurrent Puts for the same account
// resolve to one of them winning outright (last put wins, equivalent to the
// user re-requesting a code).
//
// The interface exists so a shared backing store (e.g. a TTL-capable
// key-value service) can replace the in-memory implementation without
// touching the authentication flow.
type Store interface {
	// Put stores the challenge, overwriting any existing challenge for
	// the same account id.
	Put(challenge Challenge)

	// Get returns the pending challenge for the account id, if any.
	// Expired challenges are still returned: expiry is the caller's
	// decision point, because observing an expired challenge has a side
	// effect (purging it) that belongs to the verification flow.
	Get(userID int64) (Challenge, bool)

	// Delete removes the challenge for the account id. Deleting a missing
	// key is a no-op.
	Delete(userID int64)

	// DeleteExpired removes every challenge past its expiry at the given
	// instant and returns how many were removed. Backends with native TTL
	// support may implement this as a no-op.
	DeleteExpired(now time.Time) int
}

// MemoryStore is the process-local [Store] implementation: a mutex-guarded
// map. Contents are lost on restart, which is acceptable — a user simply
// logs in again to get a fresh code.
type MemoryStore struct {
	mu         sync.RWMutex
	challenges map[int64]Challenge
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		challenges: make(map[int64]Challenge),
	}
}

func (s *MemoryStore) Put(challenge Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.UserID] = challenge
}

func (s *MemoryStore) Get(userID int64) (Challenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challenge, ok := s.challenges[userID]
	return challenge, ok
}

func (s *MemoryStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, userID)
}

func (s *MemoryStore) DeleteExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, challenge := range s.challenges {
		if challenge.Expired(now) {
			delete(s.challenges, userID)
			removed++
		}
	}

	return removed
}

// Len reports the number of stored challenges, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.challenges)
}
