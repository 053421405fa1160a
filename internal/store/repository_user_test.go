package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(1, user.Username, user.Email, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, created.CreatedAt)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice", Email: "alice@x.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(7, "alice", "alice@x.com", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.Email != "alice@x.com" {
		t.Errorf("expected email alice@x.com, got %s", found.Email)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByUsername_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByUsername(ctx, "alice")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
