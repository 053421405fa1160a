package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/internal/service"
	"github.com/loginapp/authserver/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	validate *validator.Validate

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}
