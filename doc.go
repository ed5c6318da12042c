// Package verifymail is the HTTP application shell of the CutLine
// verification mail service.
//
// It wraps a chi router with a Context-based handler signature, global
// middleware, health endpoints and a graceful-shutdown runtime:
//
//	app := verifymail.New(
//	    verifymail.WithCustomLogger(log),
//	    verifymail.WithErrorHandler(middlewares.CallableErrorHandler()),
//	    verifymail.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	    ),
//	    verifymail.WithHealthChecks(
//	        verifymail.WithReadinessCheck("mail", health.FromChecker(sender)),
//	    ),
//	    verifymail.WithHandlers(verification.NewHandler(dispatcher)),
//	)
//
//	if err := app.Run(cfg.HTTPAddr,
//	    verifymail.Logger(log),
//	    verifymail.ShutdownTimeout(cfg.ShutdownTimeout),
//	    verifymail.ShutdownHook(closeSender),
//	); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// The mail pipeline lives in package verification and pkg/mailer; the
// callable wire format in pkg/callable.
package verifymail
