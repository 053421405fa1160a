package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/internal/service"
	"github.com/loginapp/authserver/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("registration request failed validation")
		writeError(w, http.StatusBadRequest, registrationValidationMessage(err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration failed")
		writeError(w, statusFromError(err), messageFromError(err))
		return
	}

	// Registration logs the new account straight in; the second factor
	// guards only credential logins.
	sess, _ := h.sessions.Load(r)
	sess.UserID = registeredUser.UserID
	sess.Username = registeredUser.Username
	sess.TempUserID = 0
	sess.AwaitingOTP = false
	h.sessions.Save(w, sess)

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	writeJSON(w, models.StatusResponse{
		Success: true,
		Message: "Registration successful",
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("login request failed validation")
		writeError(w, http.StatusBadRequest, service.ErrInvalidDataProvided.Error())
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login failed")
		writeError(w, statusFromError(err), messageFromError(err))
		return
	}

	// Credentials check out but the session stays unauthenticated until the
	// emailed code comes back.
	sess, _ := h.sessions.Load(r)
	sess.TempUserID = foundUser.UserID
	sess.AwaitingOTP = true
	h.sessions.Save(w, sess)

	log.Debug().Int64("id", foundUser.UserID).Msg("otp challenge issued, awaiting verification")

	writeJSON(w, models.StatusResponse{
		Success: true,
		Message: "OTP sent to your email",
		UserID:  foundUser.UserID,
	}, http.StatusOK)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Int64("id", req.UserID).Msg("otp verification request failed validation")
		writeError(w, http.StatusBadRequest, service.ErrInvalidDataProvided.Error())
		return
	}

	challenge, err := h.services.AuthService.VerifyOTP(ctx, req.UserID, req.OTP)
	if err != nil {
		log.Err(err).Int64("id", req.UserID).Msg("otp verification failed")
		writeError(w, statusFromError(err), messageFromError(err))
		return
	}

	sess, _ := h.sessions.Load(r)
	sess.UserID = challenge.UserID
	sess.Username = challenge.Username
	sess.TempUserID = 0
	sess.AwaitingOTP = false
	h.sessions.Save(w, sess)

	log.Debug().Int64("id", challenge.UserID).Msg("user fully authenticated")

	writeJSON(w, models.StatusResponse{
		Success: true,
		Message: "Login successful",
	}, http.StatusOK)
}

// registrationValidationMessage distinguishes the mismatched-confirmation
// case from every other field failure so the client can show the right hint.
func registrationValidationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fieldError := range fieldErrors {
			if fieldError.Tag() == "eqfield" {
				return service.ErrPasswordsDoNotMatch.Error()
			}
		}
	}
	return service.ErrInvalidDataProvided.Error()
}
