package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/autoparts-inventory/internal/converter"
	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/middleware"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/response"
)

type DashboardService interface {
	Stats(ctx context.Context, now time.Time) (*model.Dashboard, error)
}

type handler struct {
	svc DashboardService
	now func() time.Time
}

func NewDashboardHandler(service DashboardService) *handler {
	return &handler{svc: service, now: time.Now}
}

func (h *handler) Register(r chi.Router, guard *middleware.Guard) {
	r.With(guard.Require(model.CapDashboardRead)).Get("/dashboard/stats", h.Stats)
}

func (h *handler) Stats(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Stats(r.Context(), h.now().UTC())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, converter.DashboardToResponse(d))
}
