package internal

// Handler declares routes on a router.
//
// Example:
//
//	type VerificationHandler struct {
//	    dispatcher *verification.Dispatcher
//	}
//
//	func (h *VerificationHandler) Routes(r verifymail.Router) {
//	    r.POST("/sendVerificationCode", h.send)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error passes it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
