// Package logger builds log/slog loggers with request-scoped attributes and
// optional Sentry forwarding.
//
// A [ContextExtractor] pulls a value out of the context of every record, so
// handlers only pass ctx and still get e.g. request_id on each line:
//
//	log := logger.New(logger.Config{Level: "info", Format: "json"}, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "email sent", slog.String("email", addr))
//
// [NewWithSentry] writes to stdout and additionally sends error records to
// Sentry as issues. Without a DSN it behaves like [New]. Call [FlushSentry]
// during shutdown so buffered events are not lost.
//
// [NewNope] discards all output and is the default for components created
// without a logger.
package logger
