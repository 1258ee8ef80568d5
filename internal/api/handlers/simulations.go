package handlers

import (
	"delivery-sim-service/internal/api/dto"
	"delivery-sim-service/internal/ports"
	"delivery-sim-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type SimulationHandler struct {
	Drivers  ports.DriverRepository
	Routes   ports.RouteRepository
	Orders   ports.OrderRepository
	Recorder ports.SimulationRecorder

	DefaultMaxHours  int
	DefaultStartTime string
}

// Run executes one delivery simulation over a fresh snapshot and returns its KPIs.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq := services.RunSimulationRequest{
		AvailableDrivers: req.AvailableDrivers,
		StartTime:        h.DefaultStartTime,
		MaxHoursPerDay:   h.DefaultMaxHours,
	}
	if req.StartTime != nil {
		svcReq.StartTime = *req.StartTime
	}
	if req.MaxHoursPerDay != nil {
		svcReq.MaxHoursPerDay = *req.MaxHoursPerDay
	}
	if d := strings.TrimSpace(req.SimulationDate); d != "" {
		day, err := time.Parse(time.DateOnly, d)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Simulation date must be in YYYY-MM-DD format")
			return
		}
		svcReq.SimulationDate = day
	}

	start := time.Now()
	res, err := services.RunSimulation(r.Context(), svcReq, h.Drivers, h.Routes, h.Orders)
	dur := time.Since(start)

	outcome := ports.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, services.ErrValidation):
		outcome = ports.OutcomeValidationError
	case errors.Is(err, services.ErrNotFound):
		outcome = ports.OutcomeNotFound
	default:
		outcome = ports.OutcomeError
	}
	if h.Recorder != nil {
		if recErr := h.Recorder.RecordSimulation(outcome, res, dur); recErr != nil {
			zerolog.Ctx(r.Context()).Warn().Err(recErr).Msg("record simulation failed")
		}
	}

	switch outcome {
	case ports.OutcomeValidationError:
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case ports.OutcomeNotFound:
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	case ports.OutcomeError:
		internalError(w, r, "run simulation failed", err)
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int("orders", res.TotalOrders).
		Int("unassigned", res.UnassignedOrders).
		Float64("efficiency", res.EfficiencyScore).
		Float64("profit", res.TotalProfit).
		Msg("simulation completed")

	writeJSON(w, r, http.StatusOK, dto.FromSimulationResult(res))
}
