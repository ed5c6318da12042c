package callable_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutline/verifymail/pkg/callable"
)

func TestCode_StatusAndHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code       callable.Code
		status     string
		httpStatus int
	}{
		{callable.Internal, "INTERNAL", http.StatusInternalServerError},
		{callable.InvalidArgument, "INVALID_ARGUMENT", http.StatusBadRequest},
		{callable.DeadlineExceeded, "DEADLINE_EXCEEDED", http.StatusGatewayTimeout},
		{callable.Unauthenticated, "UNAUTHENTICATED", http.StatusUnauthorized},
		{callable.ResourceExhausted, "RESOURCE_EXHAUSTED", http.StatusTooManyRequests},
		{callable.Cancelled, "CANCELLED", 499},
		{callable.Code("bogus"), "INTERNAL", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.status, tt.code.Status())
			assert.Equal(t, tt.httpStatus, tt.code.HTTPStatus())
		})
	}
}

func TestNewError_UnknownCodeBecomesInternal(t *testing.T) {
	t.Parallel()

	err := callable.NewError(callable.Code("nope"), "boom")
	assert.Equal(t, callable.Internal, err.Code)
	assert.Equal(t, "boom", err.Message)
}

func TestAsError(t *testing.T) {
	t.Parallel()

	t.Run("wrapped callable error", func(t *testing.T) {
		t.Parallel()
		sentinel := callable.NewError(callable.NotFound, "missing")
		got := callable.AsError(fmt.Errorf("lookup: %w", sentinel))
		assert.Same(t, sentinel, got)
	})

	t.Run("plain error is opaque", func(t *testing.T) {
		t.Parallel()
		got := callable.AsError(errors.New("dial tcp: password=hunter2"))
		assert.Equal(t, callable.Internal, got.Code)
		assert.Equal(t, "INTERNAL", got.Message)
		assert.NotContains(t, got.Message, "hunter2")
	})
}

func TestError_IsMatchesCopies(t *testing.T) {
	t.Parallel()

	sentinel := callable.NewError(callable.Internal, "Failed to send email")
	withDetails := sentinel.WithDetails(map[string]string{"hint": "retry"})

	require.ErrorIs(t, withDetails, sentinel)
	assert.Nil(t, sentinel.Details)
	assert.False(t, errors.Is(withDetails, callable.NewError(callable.Internal, "other")))
}

func TestCodeFromHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := map[int]callable.Code{
		http.StatusBadRequest:          callable.InvalidArgument,
		http.StatusMethodNotAllowed:    callable.InvalidArgument,
		http.StatusUnauthorized:        callable.Unauthenticated,
		http.StatusNotFound:            callable.NotFound,
		http.StatusTooManyRequests:     callable.ResourceExhausted,
		http.StatusServiceUnavailable:  callable.Unavailable,
		http.StatusInternalServerError: callable.Internal,
		http.StatusBadGateway:          callable.Internal,
	}

	for status, want := range tests {
		require.Equal(t, want, callable.CodeFromHTTPStatus(status), "status %d", status)
	}
}
