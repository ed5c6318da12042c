// Package config loads service configuration from the environment.
//
// Values come from process environment variables, optionally seeded from a
// .env file in the working directory. Existing variables win over .env.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/cutline/verifymail/pkg/logger"
	"github.com/cutline/verifymail/pkg/mailer"
	"github.com/cutline/verifymail/pkg/mailer/resend"
	"github.com/cutline/verifymail/pkg/mailer/smtp"
)

// Mail providers.
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

var (
	ErrUnknownProvider   = errors.New("config: unknown mail provider")
	ErrMissingSender     = errors.New("config: MAIL_SENDER_EMAIL is required")
	ErrMissingResendKey  = errors.New("config: RESEND_API_KEY is required for the resend provider")
	ErrMissingSMTPAuth   = errors.New("config: SMTP_USERNAME and SMTP_PASSWORD are required for the smtp provider")
	ErrInvalidSMTPTarget = errors.New("config: SMTP_HOST and SMTP_PORT must be set")
	ErrImplicitTLSPort   = errors.New("config: SMTP_PORT 465 needs implicit TLS; use a STARTTLS port such as 587")
)

// implicitTLSPort is the SMTPS port. The pool only speaks STARTTLS.
const implicitTLSPort = 465

// Mail selects the provider and the sender identity.
type Mail struct {
	Provider    string `env:"MAIL_PROVIDER" envDefault:"resend"`
	SenderEmail string `env:"MAIL_SENDER_EMAIL"`
	SenderName  string `env:"MAIL_SENDER_NAME" envDefault:"CutLine App"`
}

// From returns the sender as an RFC 5322 address.
func (m Mail) From() string {
	return mailer.Recipient(m.SenderName, m.SenderEmail)
}

// Config is the complete service configuration.
type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Log    logger.Config
	Sentry logger.SentryConfig
	Mail   Mail
	Mailer mailer.Config
	Resend resend.Config
	SMTP   smtp.Config
}

// Load reads the optional .env file and parses the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return finish(&cfg)
}

// FromMap parses configuration from the given variables only.
func FromMap(vars map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))
	cfg.Mailer.From = cfg.Mail.From()
	if cfg.Sentry.Environment == "" {
		cfg.Sentry.Environment = cfg.Env
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected provider has what it needs to send.
// Values are not otherwise inspected.
func (c *Config) Validate() error {
	var errs []error

	if c.Mail.SenderEmail == "" {
		errs = append(errs, ErrMissingSender)
	}

	switch c.Mail.Provider {
	case ProviderResend:
		if c.Resend.APIKey == "" {
			errs = append(errs, ErrMissingResendKey)
		}
	case ProviderSMTP:
		if c.SMTP.Host == "" || c.SMTP.Port <= 0 {
			errs = append(errs, ErrInvalidSMTPTarget)
		}
		if c.SMTP.Port == implicitTLSPort {
			errs = append(errs, ErrImplicitTLSPort)
		}
		if c.SMTP.Username == "" || c.SMTP.Password == "" {
			errs = append(errs, ErrMissingSMTPAuth)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownProvider, c.Mail.Provider))
	}

	return errors.Join(errs...)
}

// LogValue implements slog.LogValuer. Secrets are reported only as set or unset.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.Env),
		slog.String("http_addr", c.HTTPAddr),
		slog.Duration("shutdown_timeout", c.ShutdownTimeout),
		slog.String("log_level", c.Log.Level),
		slog.String("mail_provider", c.Mail.Provider),
		slog.String("mail_from", c.Mail.From()),
		slog.String("resend_api_key", mask(c.Resend.APIKey)),
		slog.String("smtp_addr", c.SMTP.Addr()),
		slog.String("smtp_username", c.SMTP.Username),
		slog.String("smtp_password", mask(c.SMTP.Password)),
		slog.Bool("sentry", c.Sentry.DSN != ""),
	)
}

func mask(secret string) string {
	if secret == "" {
		return "unset"
	}
	return "set"
}
