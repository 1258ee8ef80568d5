package api

import (
	"delivery-sim-service/internal/api/handlers"
	"delivery-sim-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// Dependencies are the collaborators the HTTP API is built from.
type Dependencies struct {
	Drivers  ports.DriverRepository
	Routes   ports.RouteRepository
	Orders   ports.OrderRepository
	Recorder ports.SimulationRecorder
	Logger   zerolog.Logger

	DefaultMaxHours  int
	DefaultStartTime string

	// Metrics, when set, is served at /metrics.
	Metrics http.Handler
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	entityHandler := &handlers.EntityHandler{
		Drivers: deps.Drivers,
		Routes:  deps.Routes,
		Orders:  deps.Orders,
	}
	simHandler := &handlers.SimulationHandler{
		Drivers:          deps.Drivers,
		Routes:           deps.Routes,
		Orders:           deps.Orders,
		Recorder:         deps.Recorder,
		DefaultMaxHours:  deps.DefaultMaxHours,
		DefaultStartTime: deps.DefaultStartTime,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/drivers", entityHandler.ListDrivers)
	mux.HandleFunc("/routes", entityHandler.ListRoutes)
	mux.HandleFunc("/orders", entityHandler.ListOrders)
	mux.HandleFunc("/simulations", simHandler.Run)
	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics)
	}

	return loggingMiddleware(deps.Logger, mux)
}
