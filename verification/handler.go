package verification

import (
	"github.com/cutline/verifymail"
	"github.com/cutline/verifymail/pkg/callable"
	"github.com/cutline/verifymail/pkg/logger"
)

// Handler exposes the dispatcher over the callable protocol.
type Handler struct {
	dispatcher *Dispatcher
}

// NewHandler creates a handler for d.
func NewHandler(d *Dispatcher) *Handler {
	return &Handler{dispatcher: d}
}

// Routes registers POST /sendVerificationCode.
func (h *Handler) Routes(r verifymail.Router) {
	r.POST("/sendVerificationCode", h.sendVerificationCode)
}

func (h *Handler) sendVerificationCode(c verifymail.Context) error {
	var req Request
	if err := callable.Decode(c.Request(), &req); err != nil {
		c.LogWarn("malformed callable request", logger.Error(err))
		return callable.WriteError(c.Response(), err)
	}

	result, err := h.dispatcher.Dispatch(c, req)
	if err != nil {
		return callable.WriteError(c.Response(), err)
	}

	return callable.WriteResult(c.Response(), result)
}
