package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/knadh/smtppool"

	"github.com/loginapp/authserver/internal/config"
	"github.com/loginapp/authserver/internal/logger"
)

// smtpSender delivers mail through a pooled SMTP connection.
type smtpSender struct {
	pool   *smtppool.Pool
	from   string
	logger *logger.Logger
}

// NewSender constructs the [Sender] for the configured mail profile.
//
// Development targets a local relay (MailHog-style) without authentication
// or TLS; production performs PLAIN auth against the configured submission
// host. The pool's wait and idle timeouts bound a single delivery attempt
// so a stuck relay cannot suspend login requests indefinitely.
func NewSender(cfg config.Mail, log *logger.Logger) (Sender, error) {
	var auth smtp.Auth
	var tlsConfig *tls.Config

	if cfg.Profile == config.MailProfileProduction {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		tlsConfig = &tls.Config{ServerName: cfg.Host}
	}

	pool, err := smtppool.New(smtppool.Opt{
		Host:            cfg.Host,
		Port:            cfg.Port,
		MaxConns:        4,
		IdleTimeout:     cfg.SendTimeout,
		PoolWaitTimeout: cfg.SendTimeout,
		Auth:            auth,
		TLSConfig:       tlsConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating smtp pool: %w", err)
	}

	log.Info().
		Str("profile", cfg.Profile).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("mail transport configured")

	return &smtpSender{
		pool:   pool,
		from:   cfg.From,
		logger: log,
	}, nil
}

// Send implements [Sender].
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	err := s.pool.Send(smtppool.Email{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		HTML:    []byte(htmlBody),
	})
	if err != nil {
		s.logger.Err(err).Str("to", to).Msg("error sending email")
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
