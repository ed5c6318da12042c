package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// Implementations must be safe for concurrent use.
type Sender interface {
	// Send hands a fully-prepared message to the provider.
	// A nil error means the provider accepted the message for delivery,
	// not that it reached the mailbox.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send calls f(ctx, email).
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
