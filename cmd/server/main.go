package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/loginapp/authserver/internal/config"
	"github.com/loginapp/authserver/internal/handler"
	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/internal/mail"
	"github.com/loginapp/authserver/internal/otp"
	"github.com/loginapp/authserver/internal/server"
	"github.com/loginapp/authserver/internal/service"
	"github.com/loginapp/authserver/internal/session"
	"github.com/loginapp/authserver/internal/store"
	"github.com/loginapp/authserver/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine, the environment may be set elsewhere
	_ = godotenv.Load()

	log := logger.NewLogger("auth-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	storages := store.NewStorages(db, log)

	mailSender, err := mail.NewSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}

	otpStore := otp.NewMemoryStore()
	services := service.NewServices(storages, otpStore, mailSender, cfg.OTP, log)

	sessions := session.NewManager(session.NewMemoryStore(), cfg.Session)

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	sweeper := otp.NewSweeper(otpStore, cfg.OTP.SweepInterval, log)
	defer sweeper.Stop()

	workers.NewWorkers(sweeper).Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
