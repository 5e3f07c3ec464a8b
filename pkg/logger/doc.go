// Package logger provides structured slog logging with context extraction and
// optional Sentry error reporting.
//
// Loggers produced here are plain *slog.Logger values, so any component that
// accepts the standard logger works unchanged. Context extractors inject
// request-scoped attributes (request IDs, send IDs) into every record logged
// with a Context variant.
//
//	sendIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(sendIDKey{}).(string); ok && id != "" {
//			return slog.String("send_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(sendIDExtractor)
//	log.InfoContext(ctx, "password reset email sent")
//
// For production error tracking, NewWithSentry fans records out to stdout and
// Sentry. When the DSN is empty or Sentry fails to initialize, it degrades to
// stdout-only logging, so local development needs no special wiring.
//
// NewNope returns a logger that discards everything; use it as the default in
// libraries so logging stays a side channel the caller opts into.
package logger
