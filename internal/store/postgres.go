package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/sethvargo/go-retry"

	"github.com/loginapp/authserver/internal/config"
	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/migrations"
)

// bootstrapAttempts and bootstrapDelay control the startup retry loop: the
// database container may still be coming up when the server starts, so the
// initial ping and schema migration are retried a fixed number of times with
// a fixed delay before the process gives up.
const (
	bootstrapAttempts = 5
	bootstrapDelay    = 2 * time.Second
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection, waits for the database to
// become reachable, and applies pending schema migrations.
//
// Connectivity and migration are wrapped in the bootstrap retry loop; any
// other failure (bad DSN, broken migration) is returned after the attempts
// are exhausted. This retry policy applies only to process startup — request
// handling never retries.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	backoff := retry.WithMaxRetries(bootstrapAttempts-1, retry.NewConstant(bootstrapDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := conn.PingContext(ctx); err != nil {
			log.Warn().Err(err).Msg("database not reachable yet, retrying")
			return retry.RetryableError(err)
		}

		if err := migrations.Migrate(conn); err != nil {
			log.Warn().Err(err).Msg("schema migration failed, retrying")
			return retry.RetryableError(err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("database bootstrap failed")
		return nil, fmt.Errorf("database bootstrap failed: %w", err)
	}

	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
