package models

import "time"

// User represents an account record used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on registration.
	UserID int64 `json:"userId"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Email is the unique address OTP codes are delivered to.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never plaintext, never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
