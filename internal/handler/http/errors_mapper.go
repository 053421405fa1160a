package http

import (
	"errors"
	"net/http"

	"github.com/loginapp/authserver/internal/service"
	"github.com/loginapp/authserver/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch: http.StatusBadRequest,
	service.ErrBadCredentials:      http.StatusUnauthorized,
	service.ErrChallengeNotFound:   http.StatusBadRequest,
	service.ErrChallengeExpired:    http.StatusBadRequest,
	service.ErrWrongOTPCode:        http.StatusUnauthorized,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:      http.StatusUnauthorized,
	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing error text. Known sentinels carry
// safe, descriptive messages of their own; anything mapping to a 5xx hides
// its cause behind the generic status text.
func messageFromError(err error) string {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status >= http.StatusInternalServerError {
				return http.StatusText(status)
			}
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
