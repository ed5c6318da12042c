// Package middlewares provides the HTTP middleware stack of the service.
//
// # Request ID
//
// RequestID reuses an upstream tracing ID (X-Request-ID, X-Correlation-ID or
// the Cloud Functions Function-Execution-Id header) or generates a UUID. The
// ID is echoed in the X-Request-ID response header and, with
// RequestIDExtractor, added to every log record as request_id:
//
//	app := verifymail.New(
//	    verifymail.WithCustomLogger(logger.New(cfg.Log, middlewares.RequestIDExtractor())),
//	    verifymail.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	    ),
//	)
//
// # Request logger
//
// RequestLogger writes one record per request with method, path, status and
// duration. Request bodies are never logged.
//
// # Recover
//
// Recover turns a panic into a *PanicError returned to the app's error
// handler, after logging the panic value and stack.
//
// # Callable errors
//
// CallableErrorHandler renders any error that reaches the app as a callable
// error envelope. Causes are logged, never written to the client.
package middlewares
