package handler

import (
	"github.com/loginapp/authserver/internal/config"
	"github.com/loginapp/authserver/internal/handler/http"
	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/internal/service"
	"github.com/loginapp/authserver/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
