package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cutline/verifymail/internal"
	"github.com/cutline/verifymail/pkg/logger"
)

// RequestLogger returns middleware that logs one record per request.
// An error still unhandled when the chain returns is logged at error level.
// A 5xx response already written downstream is logged at warn level, since
// whoever wrote it has logged the cause.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := http.StatusOK
			if rw, ok := c.Response().(*internal.ResponseWriter); ok {
				status = rw.Status()
			}
			if err != nil && !c.Written() {
				status = http.StatusInternalServerError
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, logger.Error(err))
			}

			switch {
			case err != nil:
				c.LogError("request completed", attrs...)
			case status >= http.StatusInternalServerError:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}

			return err
		}
	}
}
