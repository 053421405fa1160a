package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/loginapp/authserver/models"
)

// psql is the shared statement builder configured for PostgreSQL
// dollar-numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column order scanned into models.User.
var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

// buildCreateUserQuery builds the INSERT for a new account. The RETURNING
// clause hands back the server-assigned id and creation timestamp so the
// caller receives the canonical database representation.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING id, username, email, password_hash, created_at").
		ToSql()
}

// buildFindUserByUsernameQuery builds the lookup used during login.
func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
