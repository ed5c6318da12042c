// Command verifymail serves the sendVerificationCode callable endpoint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cutline/verifymail"
	"github.com/cutline/verifymail/config"
	"github.com/cutline/verifymail/middlewares"
	"github.com/cutline/verifymail/pkg/callable"
	"github.com/cutline/verifymail/pkg/health"
	"github.com/cutline/verifymail/pkg/logger"
	"github.com/cutline/verifymail/pkg/mailer"
	"github.com/cutline/verifymail/pkg/mailer/resend"
	"github.com/cutline/verifymail/pkg/mailer/smtp"
	"github.com/cutline/verifymail/verification"
)

// transport is a mail provider with a readiness probe and owned resources.
type transport interface {
	mailer.Sender
	health.Checker
	Close() error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor()).
		With(slog.String("app", "verifymail"))
	log.Info("configuration loaded", slog.Any("config", cfg))

	sender, err := newTransport(cfg)
	if err != nil {
		return err
	}

	m := mailer.New(sender, mailer.NewRenderer(verification.Templates()), cfg.Mailer)
	dispatcher := verification.NewDispatcher(m, verification.WithLogger(log))

	app := verifymail.New(
		verifymail.WithCustomLogger(log),
		verifymail.WithErrorHandler(middlewares.CallableErrorHandler()),
		verifymail.WithNotFoundHandler(func(verifymail.Context) error {
			return verifymail.ErrNotFound("Not Found")
		}),
		verifymail.WithMethodNotAllowedHandler(func(verifymail.Context) error {
			return callable.ErrBadRequest
		}),
		verifymail.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
		),
		verifymail.WithHealthChecks(
			verifymail.WithReadinessCheck("mail", health.FromChecker(sender)),
		),
		verifymail.WithHandlers(verification.NewHandler(dispatcher)),
	)

	return app.Run(cfg.HTTPAddr,
		verifymail.Logger(log),
		verifymail.ShutdownTimeout(cfg.ShutdownTimeout),
		verifymail.ShutdownHook(func(context.Context) error { return sender.Close() }),
		verifymail.ShutdownHook(logger.FlushSentry),
	)
}

// newTransport builds the configured provider once; it is shared by all requests.
func newTransport(cfg *config.Config) (transport, error) {
	switch cfg.Mail.Provider {
	case config.ProviderSMTP:
		return smtp.New(cfg.SMTP)
	default:
		return resend.New(cfg.Resend)
	}
}
