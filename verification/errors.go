package verification

import "github.com/cutline/verifymail/pkg/callable"

// ErrDeliveryFailed is the only error Dispatch returns.
// It is a callable internal error with a fixed message.
var ErrDeliveryFailed = callable.NewError(callable.Internal, "Failed to send email")
