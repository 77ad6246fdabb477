// Package middleware provides the HTTP middleware chain: trace IDs,
// token authentication and the admin gate.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/inkwell-api/inkwell/internal/api/shared"
	"github.com/inkwell-api/inkwell/internal/platform/logger"
)

// Trace adds a trace ID to the request context and stores a logger
// enriched with it, so downstream log lines correlate with the error
// responses that carry the same ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
