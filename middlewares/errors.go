package middlewares

import (
	"errors"
	"fmt"

	"github.com/cutline/verifymail/internal"
	"github.com/cutline/verifymail/pkg/callable"
	"github.com/cutline/verifymail/pkg/logger"
)

// PanicError represents a recovered panic.
type PanicError struct {
	Value any
	Stack []byte // nil when stack capture is disabled
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts the PanicError from an error if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// CallableErrorHandler writes errors as callable error envelopes.
// Callable errors keep their kind and message; HTTP errors map to the closest
// kind; anything else, panics included, becomes an opaque internal error.
func CallableErrorHandler() internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		ce := toCallable(err)
		if ce.Code == callable.Internal {
			c.LogError("request failed", logger.Error(err))
		} else {
			c.LogWarn("request rejected", logger.Error(err))
		}
		return callable.WriteError(c.Response(), ce)
	}
}

func toCallable(err error) *callable.Error {
	var ce *callable.Error
	if errors.As(err, &ce) {
		return ce
	}
	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		return callable.NewError(callable.CodeFromHTTPStatus(httpErr.Code), httpErr.Message)
	}
	return callable.AsError(err)
}
