package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/response"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

const pingTimeout = 2 * time.Second

type PingFunc func(ctx context.Context) error

// Handler always answers 200; db reports whether the database answered a
// ping.
func Handler(ping PingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		db := "connected"
		if err := ping(ctx); err != nil {
			logger.Warn(r.Context(), "health check: database ping failed", logger.ErrorF(err))
			db = "disconnected"
		}

		response.OK(w, r, dto.HealthResponse{Status: "ok", DB: db})
	}
}
