package models

// RegisterRequest is the body of POST /api/register.
// Validation tags are enforced at the HTTP boundary before the
// service layer is called.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest is the body of POST /api/verify-otp. UserID is the
// account id returned by the login response; OTP is the 6-digit code
// delivered by email.
type VerifyOTPRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	OTP    string `json:"otp" validate:"required,len=6,numeric"`
}
