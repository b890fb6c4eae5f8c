package middleware

import (
	"net/http"
	"strings"
	"time"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger attaches a request-scoped logger to the context and emits one
// structured entry per request.
func Logger(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = noopLogger
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := base.With(
				zap.String("request_id", chiMid.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			rw := NewResponseRecorder(w)
			next.ServeHTTP(rw, r.WithContext(WithLogger(r.Context(), logger)))

			fields := []zap.Field{
				zap.Int("status", rw.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_ip", clientIP(r)),
			}
			switch {
			case rw.Status() >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case rw.Status() >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
		})
	}
}

func clientIP(r *http.Request) string {
	// chi's RealIP has already folded X-Forwarded-For / X-Real-IP into RemoteAddr
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}
