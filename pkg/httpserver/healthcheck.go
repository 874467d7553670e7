package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/proapp/pkg/logger"
)

// Check is a named readiness dependency.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// HealthCheckHandler answers liveness with "ALIVE" when no checks are given
// and readiness with "READY" or 503 "NOT_READY" otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(checks) == 0 {
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		for _, c := range checks {
			if err := c.Fn(r.Context()); err != nil {
				if log != nil {
					log.ErrorContext(r.Context(), "readiness check failed", logger.Component(c.Name), logger.Error(err))
				}
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		_, _ = w.Write([]byte("READY"))
	}
}
