package smtp

import (
	"context"
	"errors"
	"fmt"
	"net"
	netsmtp "net/smtp"
	"net/textproto"
	"time"

	"github.com/jordan-wright/email"

	"github.com/cutline/verifymail/pkg/mailer"
)

// ErrPoolSize is returned when the configured pool size is not positive.
var ErrPoolSize = errors.New("smtp: pool size must be positive")

// noTimeout makes the pool wait for a free connection indefinitely.
const noTimeout time.Duration = -1

// Transport is the connection pool the sender delivers through.
// *email.Pool satisfies it.
type Transport interface {
	Send(e *email.Email, timeout time.Duration) error
	Close()
}

// Sender implements mailer.Sender over a pool of authenticated SMTP connections.
type Sender struct {
	transport Transport
	dialer    *net.Dialer
	addr      string
}

// New creates the connection pool. Connections are opened lazily on first use.
func New(cfg Config) (*Sender, error) {
	if cfg.PoolSize <= 0 {
		return nil, ErrPoolSize
	}

	auth := netsmtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	pool, err := email.NewPool(cfg.Addr(), cfg.PoolSize, auth)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create pool: %w", err)
	}

	return NewWithTransport(cfg.Addr(), pool), nil
}

// NewWithTransport wraps an existing transport. addr is used by Check only.
func NewWithTransport(addr string, transport Transport) *Sender {
	return &Sender{
		transport: transport,
		dialer:    &net.Dialer{},
		addr:      addr,
	}
}

// Send implements mailer.Sender. The pool call blocks until a connection is
// free and the server answers. ctx is not consulted: once started, the
// attempt has no deadline and cannot be cancelled.
func (s *Sender) Send(_ context.Context, msg *mailer.Email) error {
	if err := s.transport.Send(toEmail(msg), noTimeout); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return nil
}

// Check dials the SMTP server to verify it is reachable.
func (s *Sender) Check(ctx context.Context) error {
	conn, err := s.dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("smtp: server unreachable: %w", err)
	}
	return conn.Close()
}

// Close releases all pooled connections.
func (s *Sender) Close() error {
	s.transport.Close()
	return nil
}

func toEmail(msg *mailer.Email) *email.Email {
	e := email.NewEmail()
	e.From = msg.From
	e.To = msg.To
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)
	if msg.HTML != "" {
		e.HTML = []byte(msg.HTML)
	}
	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}
	for k, v := range msg.Headers {
		e.Headers.Set(textproto.CanonicalMIMEHeaderKey(k), v)
	}
	return e
}
