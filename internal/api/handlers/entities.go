package handlers

import (
	"delivery-sim-service/internal/api/dto"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/ports"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// EntityHandler exposes read-only listings of the fleet snapshot.
type EntityHandler struct {
	Drivers ports.DriverRepository
	Routes  ports.RouteRepository
	Orders  ports.OrderRepository
}

func (h *EntityHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	drivers, err := h.Drivers.ListDrivers(r.Context(), limit)
	if err != nil {
		internalError(w, r, "list drivers failed", err)
		return
	}

	res := dto.ListDriversResponse{Drivers: make([]dto.DriverResponse, 0, len(drivers))}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.FromDriver(d))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *EntityHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	routes, err := h.Routes.ListRoutes(r.Context())
	if err != nil {
		internalError(w, r, "list routes failed", err)
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, rt := range routes {
		res.Routes = append(res.Routes, dto.FromRoute(rt))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// ListOrders returns every order, or only undelivered ones with ?pending=true.
func (h *EntityHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	pendingOnly := false
	if v := r.URL.Query().Get("pending"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "pending must be true or false")
			return
		}
		pendingOnly = b
	}

	var (
		orders []domain.Order
		err    error
	)
	if pendingOnly {
		orders, err = h.Orders.ListPendingOrders(r.Context())
	} else {
		orders, err = h.Orders.ListOrders(r.Context())
	}
	if err != nil {
		internalError(w, r, "list orders failed", err)
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.FromOrder(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
