// Package internal holds the application shell re-exported by the root
// verifymail package: App, Context, Router, Handler, Middleware and the
// server runtime.
//
// Handlers are plain types with a Routes method:
//
//	func (h *Handler) Routes(r verifymail.Router) {
//	    r.POST("/sendVerificationCode", h.send)
//	}
//
// A HandlerFunc returns an error instead of writing one; the App passes it
// to the configured ErrorHandler unless the response was already written.
//
// Context embeds context.Context, so it can be handed straight to blocking
// calls and is cancelled when the client goes away.
//
// App.Run listens, serves and on SIGINT/SIGTERM stops accepting requests,
// waits for in-flight ones, then runs shutdown hooks within the shutdown
// timeout.
package internal
