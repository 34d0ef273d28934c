// Package logger builds log/slog loggers with context extraction and
// optional Sentry forwarding.
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id := middleware.GetReqID(ctx); id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log, err := logger.New(cfg.Log, os.Stdout, requestID)
//	log.InfoContext(ctx, "slug generated", slog.Int("length", n))
//	// {"level":"INFO","msg":"slug generated","length":12,"request_id":"..."}
//
// When Config.Sentry.DSN is set, errors become Sentry issues and warnings
// are stored as Sentry logs, in addition to the local handler. A missing
// DSN or a failed Sentry init falls back to local logging only.
package logger
