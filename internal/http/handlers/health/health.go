// Package health serves the liveness/readiness probe.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/names-api/internal/utils/response"
)

// Pinger is the part of storage.Storage the probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check handles GET /healthz. It answers 200 {"status":"ok"} when storage
// responds within two seconds and 503 otherwise.
func Check(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			slog.Warn("health check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable, response.Error("storage unavailable"))
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	}
}
