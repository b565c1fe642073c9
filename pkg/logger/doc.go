// Package logger provides structured slog logging with context extraction and Sentry integration.
//
// # Basic Usage
//
// Create a JSON logger with a context extractor:
//
//	requestID := logger.StringExtractor("request_id", middleware.GetReqID)
//	log := logger.New(os.Stdout, slog.LevelInfo, requestID)
//
//	log.InfoContext(ctx, "callback handled", slog.String("orcid", id))
//	// {"level":"INFO","msg":"callback handled","orcid":"...","request_id":"..."}
//
// Extractors run on every log call, so request-scoped values stay fresh.
// Returning false from an extractor skips the attribute for that record.
//
// # Sentry Integration
//
// NewWithSentry writes to the given writer and, when Config.SentryDSN is set,
// also forwards records to Sentry: errors become issues, records at or above
// Config.SentryMinLevel are stored as logs.
//
//	var cfg logger.Config
//	if err := env.Parse(&cfg); err != nil {
//		return err
//	}
//	log := logger.NewWithSentry(os.Stdout, cfg, requestID)
//
// Without a DSN, or if the Sentry SDK fails to initialize, the logger falls
// back to local output only.
//
// # No-op Logger
//
// NewNope returns a logger that discards everything. Libraries use it as the
// default when the caller configures no logger.
package logger
