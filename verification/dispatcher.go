package verification

import (
	"context"
	"log/slog"

	"github.com/cutline/verifymail/pkg/logger"
	"github.com/cutline/verifymail/pkg/mailer"
)

// Mailer renders and sends a templated email. *mailer.Mailer implements it.
type Mailer interface {
	Send(ctx context.Context, params mailer.SendParams) error
}

// Dispatcher sends verification code emails.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	mailer Mailer
	logger *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for delivery outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a dispatcher sending through m.
func NewDispatcher(m Mailer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		mailer: m,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type templateData struct {
	Code string
}

// Dispatch sends one verification email for req.
// The mail is attempted exactly once, without validation or retry, and runs
// to completion even if ctx is cancelled; only its values are used.
// On failure it returns ErrDeliveryFailed and logs the cause.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	ctx = context.WithoutCancel(ctx)

	err := d.mailer.Send(ctx, mailer.SendParams{
		To:       req.Email,
		Template: TemplateName,
		Data:     templateData{Code: req.Code.String()},
		Tags:     mailer.Tags{"category": "verification_code"},
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to send email",
			slog.String("email", req.Email),
			logger.Error(err),
		)
		return nil, ErrDeliveryFailed
	}

	d.logger.InfoContext(ctx, "email sent", slog.String("email", req.Email))
	return &Result{Success: true}, nil
}
