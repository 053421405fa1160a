package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMailConfigs indicates an unknown mail profile or missing
	// transport settings for the selected profile.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidSessionConfigs indicates invalid session cookie settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidOTPConfigs indicates an invalid OTP challenge lifetime.
	ErrInvalidOTPConfigs = errors.New("invalid otp configuration")
)
