package models

// StatusResponse is the common success envelope returned by the
// register, login, verify-otp and logout endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// UserID is populated only by the login endpoint: the client needs
	// the account id to submit the follow-up OTP verification.
	UserID int64 `json:"userId,omitempty"`
}

// UserResponse is returned by GET /api/user for an authenticated session.
type UserResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
