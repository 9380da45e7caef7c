package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/autoparts-inventory/internal/converter"
	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/middleware"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/response"
)

type OrderService interface {
	AddOrder(ctx context.Context, params model.AddOrderParams) (*model.AddOrderResult, error)
	ListOrders(ctx context.Context, filter model.OrdersFilter) (*model.OrderPage, error)
	DeleteOrder(ctx context.Context, id string) (*model.DeleteOrderResult, error)
}

type handler struct {
	svc OrderService
}

func NewOrderHandler(service OrderService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router, guard *middleware.Guard) {
	r.Route("/orders", func(r chi.Router) {
		r.With(guard.Require(model.CapOrdersRead)).Get("/list", h.ListOrders)
		r.With(guard.Require(model.CapOrdersWrite)).Post("/add", h.AddOrder)
		r.With(guard.Require(model.CapOrdersWrite)).Delete("/{id}", h.DeleteOrder)
	})
}

func (h *handler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.AddOrderRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	var addedBy string
	if id := middleware.IdentityFromContext(r.Context()); id != nil {
		addedBy = id.Name
	}

	res, err := h.svc.AddOrder(r.Context(), converter.AddOrderRequestToParams(req, addedBy))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, converter.AddOrderResultToResponse(res))
}

func (h *handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	perPage, _ := strconv.ParseInt(q.Get("per_page"), 10, 64)

	res, err := h.svc.ListOrders(r.Context(), model.OrdersFilter{
		ProductID: q.Get("product_id"),
		Page:      model.Page{Number: page, PerPage: perPage},
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, converter.OrderPageToResponse(res))
}

func (h *handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, dto.DeleteOrderResponse{Success: true, QtyRestored: res.QtyRestored})
}
