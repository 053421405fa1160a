package service

import (
	"github.com/loginapp/authserver/internal/config"
	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/internal/mail"
	"github.com/loginapp/authserver/internal/otp"
	"github.com/loginapp/authserver/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(
	storages *store.Storages,
	otpStore otp.Store,
	mailSender mail.Sender,
	cfg config.OTP,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			otpStore,
			otp.NewCodeGenerator(),
			mailSender,
			cfg.TTL,
			logger,
		),
	}
}
