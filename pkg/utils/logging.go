package utils

import (
	"context"
	"log/slog"
)

type traceIDKey struct{}

// WithTraceID attaches the request trace id to ctx so every log line emitted
// during that invocation can carry it.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id set by the middleware, or "".
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// LoggerFromContext returns a logger scoped to the current invocation.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if id := TraceIDFromContext(ctx); id != "" {
		return slog.Default().With("trace_id", id)
	}
	return slog.Default()
}
