package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loginapp/authserver/internal/config"
	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/internal/service"
	"github.com/loginapp/authserver/internal/session"
)

func newTestSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), config.Session{
		CookieName: "session_id",
		TTL:        time.Hour,
	})
}

func TestNewHandlers_HTTPConfigured(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, newTestSessions(), config.Server{HTTPAddress: ":3000"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressConfigured(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, newTestSessions(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}
