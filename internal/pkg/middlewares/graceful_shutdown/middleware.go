package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"crm/internal/pkg/response"
	"crm/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Middleware отвечает 503 на запросы, пришедшие после начала остановки.
func Middleware(log handlerLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					response.Error(w, r, log, http.StatusServiceUnavailable, response.CodeUnavailable, "Service is shutting down")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
