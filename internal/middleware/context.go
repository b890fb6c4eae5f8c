package middleware

import (
	"context"

	"go.uber.org/zap"
)

// context keys are unexported to avoid collisions
type ctxKey string

const ctxKeyLogger ctxKey = "logger"

var noopLogger = zap.NewNop()

// WithLogger stores the logger in context for downstream handlers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// LoggerFrom returns the request logger, or a no-op logger when none is set.
func LoggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKeyLogger).(*zap.Logger); ok && l != nil {
		return l
	}
	return noopLogger
}
