// Package mail delivers OTP emails. The transport is decided once at
// startup from the configured profile — a local unauthenticated relay for
// development, an authenticated SMTP submission host for production — and
// injected as a [Sender]; request handling never branches on the profile.
package mail

import (
	"context"
	"errors"
)

// ErrMailSend wraps any transport-level delivery failure. Callers surface
// it as an internal error; the user-facing operation is never retried
// automatically.
var ErrMailSend = errors.New("sending mail failed")

// Sender delivers a single email. Implementations either succeed or fail;
// how delivery happens is not the caller's concern.
//
// A Send sits on the login request's critical path, so implementations must
// bound how long a single delivery attempt can take.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
