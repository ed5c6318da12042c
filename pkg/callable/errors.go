package callable

import (
	"errors"
	"net/http"
	"strings"
)

// Code is the kind of a callable error.
type Code string

// Error kinds understood by callable clients.
const (
	OK                 Code = "ok"
	Cancelled          Code = "cancelled"
	Unknown            Code = "unknown"
	InvalidArgument    Code = "invalid-argument"
	DeadlineExceeded   Code = "deadline-exceeded"
	NotFound           Code = "not-found"
	AlreadyExists      Code = "already-exists"
	PermissionDenied   Code = "permission-denied"
	ResourceExhausted  Code = "resource-exhausted"
	FailedPrecondition Code = "failed-precondition"
	Aborted            Code = "aborted"
	OutOfRange         Code = "out-of-range"
	Unimplemented      Code = "unimplemented"
	Internal           Code = "internal"
	Unavailable        Code = "unavailable"
	DataLoss           Code = "data-loss"
	Unauthenticated    Code = "unauthenticated"
)

var httpStatuses = map[Code]int{
	OK:                 http.StatusOK,
	Cancelled:          499,
	Unknown:            http.StatusInternalServerError,
	InvalidArgument:    http.StatusBadRequest,
	DeadlineExceeded:   http.StatusGatewayTimeout,
	NotFound:           http.StatusNotFound,
	AlreadyExists:      http.StatusConflict,
	PermissionDenied:   http.StatusForbidden,
	ResourceExhausted:  http.StatusTooManyRequests,
	FailedPrecondition: http.StatusBadRequest,
	Aborted:            http.StatusConflict,
	OutOfRange:         http.StatusBadRequest,
	Unimplemented:      http.StatusNotImplemented,
	Internal:           http.StatusInternalServerError,
	Unavailable:        http.StatusServiceUnavailable,
	DataLoss:           http.StatusInternalServerError,
	Unauthenticated:    http.StatusUnauthorized,
}

// Valid reports whether c is a known error kind.
func (c Code) Valid() bool {
	_, ok := httpStatuses[c]
	return ok
}

// Status returns the canonical wire status, e.g. "INVALID_ARGUMENT".
// Unknown kinds map to "INTERNAL".
func (c Code) Status() string {
	if !c.Valid() {
		return "INTERNAL"
	}
	return strings.ToUpper(strings.ReplaceAll(string(c), "-", "_"))
}

// HTTPStatus returns the HTTP status code used to report the kind.
func (c Code) HTTPStatus() int {
	if s, ok := httpStatuses[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// CodeFromHTTPStatus picks the error kind closest to an HTTP status.
// Statuses without a dedicated kind map to Internal for 5xx and
// InvalidArgument for other 4xx.
func CodeFromHTTPStatus(status int) Code {
	switch status {
	case http.StatusUnauthorized:
		return Unauthenticated
	case http.StatusForbidden:
		return PermissionDenied
	case http.StatusNotFound:
		return NotFound
	case http.StatusConflict:
		return AlreadyExists
	case http.StatusTooManyRequests:
		return ResourceExhausted
	case http.StatusNotImplemented:
		return Unimplemented
	case http.StatusServiceUnavailable:
		return Unavailable
	case http.StatusGatewayTimeout:
		return DeadlineExceeded
	}
	if status >= 400 && status < 500 {
		return InvalidArgument
	}
	return Internal
}

// Error is an error that is reported to the caller as-is.
// Only Code, Message and Details reach the wire.
type Error struct {
	Details any
	Code    Code
	Message string
}

// NewError creates a callable error of the given kind.
// An unknown kind is replaced with Internal.
func NewError(code Code, message string) *Error {
	if !code.Valid() {
		code = Internal
	}
	return &Error{Code: code, Message: message}
}

// WithDetails returns a copy of e carrying extra structured details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is matches another *Error with the same kind and message, so that
// copies produced by WithDetails still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// AsError returns the *Error in err's chain.
// Any other error becomes an opaque internal error.
func AsError(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return NewError(Internal, "INTERNAL")
}

// ErrBadRequest is reported for requests that do not follow the protocol.
var ErrBadRequest = NewError(InvalidArgument, "Bad Request")
