package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username or email already exists in
	// the database (unique-constraint violation).
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
