package service

import (
	"context"

	"github.com/loginapp/authserver/internal/otp"
	"github.com/loginapp/authserver/models"
)

// AuthService drives the authentication state machine: registration,
// credential verification with OTP issuance, and OTP verification.
//
// Session state itself lives at the transport layer; the service reports
// which transitions happened and the handler mutates the session bag
// accordingly.
type AuthService interface {
	// RegisterUser creates an account from the registration request.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and, on success, issues an OTP challenge
	// and emails the code. The returned user identifies the account now
	// pending its second factor.
	Login(ctx context.Context, username, password string) (models.User, error)

	// VerifyOTP checks the submitted code against the pending challenge.
	// On success the challenge is consumed and returned so the caller can
	// promote the session without re-fetching the account.
	VerifyOTP(ctx context.Context, userID int64, code string) (otp.Challenge, error)
}
