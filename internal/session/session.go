// SPDX-License-Identifier: Apache-2.0

// Package session implements cookie-based server-side sessions: an opaque
// token travels in an HTTP-only cookie, and all session state lives in a
// server-side bag keyed by that token.
//
// Like the OTP store, the default bag store is process-local; multi-instance
// deployments need sticky sessions or a shared [Store] implementation.
package session

import "time"

// Session is the server-side bag associated 1:1 with a client.
//
// UserID is set only when OTP verification succeeds (registration being the
// sole exception, which grants a full session immediately). A session with
// AwaitingOTP set and no UserID is pending the second factor and must not be
// treated as authenticated.
type Session struct {
	// Token is the opaque identifier delivered to the client via cookie.
	Token string

	// UserID is the authenticated account id; zero means not authenticated.
	UserID int64

	// Username mirrors the authenticated account's username for display.
	Username string

	// TempUserID is the account id awaiting OTP confirmation; set when
	// credentials check out, cleared on verification.
	TempUserID int64

	// AwaitingOTP marks the pending-2FA state.
	AwaitingOTP bool

	// ExpiresAt is when the bag store drops this session.
	ExpiresAt time.Time
}

// Authenticated reports whether the session has completed the full login
// flow. A pending-OTP session answers false.
func (s Session) Authenticated() bool {
	return s.UserID != 0
}
