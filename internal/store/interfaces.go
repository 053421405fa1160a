package store

import (
	"context"

	"github.com/loginapp/authserver/models"
)

// UserRepository is the persistence contract the authentication service
// needs from the credential store: create with a uniqueness guarantee and
// look up by username.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
