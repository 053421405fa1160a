// Package otp implements the one-time passcode half of the login flow:
// code generation, the pending-challenge store, and background reclamation
// of expired challenges.
//
// The store is process-local by design. A deployment running several server
// instances will not share pending challenges between them — a login handled
// by one instance followed by a verify routed to another fails with
// [ErrChallengeNotFound]. Horizontal scaling requires sticky sessions or a
// shared implementation of [Store].
package otp

import "time"

// Challenge is a pending OTP issued after a successful credential check.
// At most one live challenge exists per account: issuing a new one
// overwrites any prior unconsumed challenge for the same user id.
type Challenge struct {
	// UserID is the account the challenge belongs to; also the store key.
	UserID int64

	// Code is the 6-digit decimal code delivered by email.
	Code string

	// Email is the address the code was sent to.
	Email string

	// Username is denormalized from the account so the session can be
	// populated on verification without re-fetching the user record.
	Username string

	// ExpiresAt is the absolute expiry timestamp. Expiry is enforced by
	// comparison at verification time, not by active eviction.
	ExpiresAt time.Time
}

// Expired reports whether the challenge is past its expiry at the given
// instant.
func (c Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
