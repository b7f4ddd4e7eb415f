package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

const shuttingDownBody = `{"error":"Service Unavailable","message":"service is shutting down"}`

// Middleware отклоняет новые запросы после того, как ongoingCtx отменен в процессе остановки.
// Клиенту отдается тот же JSON формат ошибок, что и у REST handlers.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Connection", "close")
					w.Header().Set("Retry-After", "5")
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte(shuttingDownBody))
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
