package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists]. The
//     username and email columns both carry unique constraints; the caller
//     cannot tell which collided, which is intentional.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
