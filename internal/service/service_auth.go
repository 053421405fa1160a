// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/internal/mail"
	"github.com/loginapp/authserver/internal/otp"
	"github.com/loginapp/authserver/internal/store"
	"github.com/loginapp/authserver/models"
)

// authService is the concrete implementation of [AuthService].
// It orchestrates the credential store, the OTP challenge store, the code
// generator, and the mail transport; bcrypt is the password hashing
// primitive.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// otpStore holds pending challenges keyed by account id.
	otpStore otp.Store

	// codeGenerator mints the 6-digit codes.
	codeGenerator otp.CodeGenerator

	// mailSender delivers the code to the account's email address.
	mailSender mail.Sender

	// otpTTL is how long an issued challenge remains valid.
	otpTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction except the injected stores, which guarantee their own
// atomicity.
func NewAuthService(
	userRepository store.UserRepository,
	otpStore otp.Store,
	codeGenerator otp.CodeGenerator,
	mailSender mail.Sender,
	otpTTL time.Duration,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		otpStore:       otpStore,
		codeGenerator:  codeGenerator,
		mailSender:     mailSender,
		otpTTL:         otpTTL,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// It validates that every field is present and the confirmation matches,
// hashes the password with bcrypt, and delegates persistence to the
// repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [ErrInvalidDataProvided] if any field is empty.
//   - [ErrPasswordsDoNotMatch] if the confirmation differs.
//   - [store.ErrUserAlreadyExists] (wrapped) on a uniqueness violation.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		log.Error().Str("username", req.Username).Msg("registration with missing fields")
		return models.User{}, ErrInvalidDataProvided
	}

	if req.Password != req.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account and issues its OTP challenge.
//
// The account lookup and the hash comparison both collapse into
// [ErrBadCredentials]; the caller cannot distinguish an unknown username
// from a wrong password.
//
// On success a fresh challenge replaces any pending one for the account
// (the at-most-one-live-challenge invariant), and the code is emailed. The
// challenge is stored before the send: if delivery fails the error
// propagates, but a code that somehow reached the user is still honoured,
// and a re-login regenerates it either way.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("login with missing fields")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", username).Msg("login for unknown username")
			return models.User{}, ErrBadCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("login with wrong password")
		return models.User{}, ErrBadCredentials
	}

	code := a.codeGenerator.Generate()
	a.otpStore.Put(otp.Challenge{
		UserID:    foundUser.UserID,
		Code:      code,
		Email:     foundUser.Email,
		Username:  foundUser.Username,
		ExpiresAt: time.Now().Add(a.otpTTL),
	})

	body, err := mail.RenderOTPEmail(foundUser.Username, code, a.otpTTL)
	if err != nil {
		log.Err(err).Msg("rendering otp email failed")
		return models.User{}, err
	}

	if err := a.mailSender.Send(ctx, foundUser.Email, mail.OTPEmailSubject, body); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("sending otp email failed")
		return models.User{}, fmt.Errorf("sending otp email failed: %w", err)
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("otp challenge issued")

	return foundUser, nil
}

// VerifyOTP checks a submitted code against the account's pending challenge.
//
// Returns the consumed challenge on success or:
//   - [ErrInvalidDataProvided] if either argument is missing.
//   - [ErrChallengeNotFound] if no challenge exists for the account.
//   - [ErrChallengeExpired] if the challenge is past its expiry; the
//     challenge is purged, so a retry reports not-found.
//   - [ErrWrongOTPCode] if the code differs; the challenge is kept so a
//     correct retry within the window still succeeds.
func (a *authService) VerifyOTP(ctx context.Context, userID int64, code string) (otp.Challenge, error) {
	log := logger.FromContext(ctx)

	if userID == 0 || code == "" {
		log.Error().Int64("id", userID).Msg("otp verification with missing fields")
		return otp.Challenge{}, ErrInvalidDataProvided
	}

	challenge, ok := a.otpStore.Get(userID)
	if !ok {
		log.Debug().Int64("id", userID).Msg("no pending otp challenge")
		return otp.Challenge{}, ErrChallengeNotFound
	}

	if challenge.Expired(time.Now()) {
		a.otpStore.Delete(userID)
		log.Debug().Int64("id", userID).Msg("otp challenge expired")
		return otp.Challenge{}, ErrChallengeExpired
	}

	if challenge.Code != code {
		log.Debug().Int64("id", userID).Msg("wrong otp code submitted")
		return otp.Challenge{}, ErrWrongOTPCode
	}

	a.otpStore.Delete(userID)
	log.Debug().Int64("id", userID).Msg("otp challenge verified")

	return challenge, nil
}
