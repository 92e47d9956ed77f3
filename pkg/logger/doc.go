// Package logger builds slog loggers with context extractors and optional
// Sentry reporting.
//
// A ContextExtractor pulls one attribute out of the record's context. The
// htmx middlewares ship extractors for request IDs and htmx headers:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(middlewares.RequestIDExtractor(), middlewares.HTMXExtractor()),
//	)
//	log.InfoContext(ctx, "contact deleted")
//	// {"level":"INFO","msg":"contact deleted","request_id":"...","htmx_target":"rows","htmx_boosted":false}
//
// Config can be loaded from YAML and turned into a logger with FromConfig.
// A Sentry DSN adds a second destination: errors become Sentry issues and
// warnings are kept as Sentry logs. Without a DSN the logger writes to its
// output only, so the same code runs in development.
package logger
