package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required input field is
	// missing or empty. Never retried.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPasswordsDoNotMatch is returned at registration when the password
	// and its confirmation differ.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrBadCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller so the API cannot be used to enumerate accounts.
	ErrBadCredentials = errors.New("invalid username or password")

	// ErrChallengeNotFound is returned when no pending OTP challenge
	// exists for the submitted account id.
	ErrChallengeNotFound = errors.New("otp challenge not found")

	// ErrChallengeExpired is returned when the pending challenge is past
	// its expiry; the challenge is purged as a side effect.
	ErrChallengeExpired = errors.New("otp challenge expired")

	// ErrWrongOTPCode is returned when the submitted code does not match.
	// The challenge is kept so the user can retry within the expiry window.
	ErrWrongOTPCode = errors.New("wrong otp code")
)
