package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vitrinedev/vitrine/internal/domain"
)

type contextKey string

// loggerContextKey stores the request-scoped logger.
const loggerContextKey contextKey = "logger"

// WithRequestLogger injects a request-scoped logger carrying request
// metadata and, when authenticated, the user ID. Place it after RequestID
// and WithSession in the chain.
func WithRequestLogger(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := baseLogger.With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if requestID := domain.RequestIDFromContext(r.Context()); requestID != "" {
				requestLogger = requestLogger.With(slog.String("request_id", requestID))
			}

			if sess := domain.SessionFromContext(r.Context()); sess != nil {
				requestLogger = requestLogger.With(slog.String("user_id", sess.UserID))
			}

			ctx := context.WithValue(r.Context(), loggerContextKey, requestLogger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLogger retrieves the request-scoped logger, falling back to the given
// logger or slog.Default.
func GetLogger(ctx context.Context, fallback ...*slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	if len(fallback) > 0 && fallback[0] != nil {
		return fallback[0]
	}
	return slog.Default()
}
