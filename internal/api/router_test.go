package api

import (
	"bytes"
	"context"
	"delivery-sim-service/internal/adapters/memory"
	"delivery-sim-service/internal/api/dto"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/ports"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	outcomes []string
}

func (f *fakeRecorder) RecordSimulation(outcome string, _ *domain.SimulationResult, _ time.Duration) error {
	f.outcomes = append(f.outcomes, outcome)
	return nil
}

type brokenOrders struct{}

func (brokenOrders) ListOrders(context.Context) ([]domain.Order, error) {
	return nil, errors.New("connection reset")
}

func (brokenOrders) ListPendingOrders(context.Context) ([]domain.Order, error) {
	return nil, errors.New("connection reset")
}

func deadline(h, m int) time.Time {
	return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
}

func testStore() *memory.SnapshotStore {
	return memory.NewSnapshotStore(
		[]domain.Driver{
			{DriverID: "D1", Name: "Amit", CurrentShiftHours: 6, PastWeekHours: 35},
			{DriverID: "D2", Name: "Priya", CurrentShiftHours: 9, PastWeekHours: 40},
		},
		[]domain.Route{
			{RouteID: "R001", DistanceKm: 25, Traffic: domain.TrafficMedium, BaseTimeMinutes: 45},
			{RouteID: "R003", DistanceKm: 50, Traffic: domain.TrafficHigh, BaseTimeMinutes: 60},
		},
		[]domain.Order{
			{OrderID: "O001", ValueRs: 1500, RouteID: "R001", DeliveryDeadline: deadline(12, 0)},
			{OrderID: "O003", ValueRs: 2000, RouteID: "R003", DeliveryDeadline: deadline(9, 0)},
			{OrderID: "O004", ValueRs: 300, RouteID: "R001", DeliveryDeadline: deadline(7, 0), Delivered: true},
		},
	)
}

func newTestRouter(store *memory.SnapshotStore, rec ports.SimulationRecorder, logs io.Writer) http.Handler {
	return NewRouter(Dependencies{
		Drivers:          store,
		Routes:           store,
		Orders:           store,
		Recorder:         rec,
		Logger:           zerolog.New(logs),
		DefaultMaxHours:  8,
		DefaultStartTime: "08:00",
	})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	h := newTestRouter(testStore(), nil, io.Discard)

	rr := do(t, h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoedAndLogged(t *testing.T) {
	var logs bytes.Buffer
	h := newTestRouter(testStore(), nil, &logs)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["req_id"])
	assert.Equal(t, "/health", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestListDrivers(t *testing.T) {
	h := newTestRouter(testStore(), nil, io.Discard)

	rr := do(t, h, http.MethodGet, "/drivers?limit=1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var res dto.ListDriversResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Drivers, 1)
	assert.Equal(t, "D1", res.Drivers[0].DriverID)

	rr = do(t, h, http.MethodGet, "/drivers?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListRoutes(t *testing.T) {
	h := newTestRouter(testStore(), nil, io.Discard)

	rr := do(t, h, http.MethodGet, "/routes", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var res dto.ListRoutesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Len(t, res.Routes, 2)
}

func TestListOrdersPending(t *testing.T) {
	h := newTestRouter(testStore(), nil, io.Discard)

	var all, pending dto.ListOrdersResponse
	rr := do(t, h, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))

	rr = do(t, h, http.MethodGet, "/orders?pending=true", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pending))

	assert.Len(t, all.Orders, 3)
	assert.Len(t, pending.Orders, 2)

	rr = do(t, h, http.MethodGet, "/orders?pending=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRunSimulation(t *testing.T) {
	rec := &fakeRecorder{}
	h := newTestRouter(testStore(), rec, io.Discard)

	rr := do(t, h, http.MethodPost, "/simulations", `{"availableDrivers":2,"startTime":"08:00","maxHoursPerDay":8}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res dto.SimulationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))

	assert.Equal(t, 2, res.TotalOrders)
	assert.Equal(t, 1, res.OnTimeDeliveries)
	assert.Equal(t, 1, res.LateDeliveries)
	assert.Equal(t, 50.0, res.EfficiencyScore)
	assert.Equal(t, 50, res.Penalties)
	assert.Equal(t, 150.0, res.Bonuses)
	assert.Equal(t, 475.0, res.FuelCost)
	assert.Equal(t, 1525.0+1600.0, res.TotalProfit)
	assert.Equal(t, deadline(8, 0), res.StartTime)
	assert.Len(t, res.DriverAssignments, 2)
	require.Len(t, res.OrderResults, 2)
	assert.Equal(t, "Late", res.OrderResults[1].DeliveryStatus)

	assert.Equal(t, []string{ports.OutcomeSuccess}, rec.outcomes)
}

func TestRunSimulationAppliesDefaults(t *testing.T) {
	h := newTestRouter(testStore(), nil, io.Discard)

	rr := do(t, h, http.MethodPost, "/simulations", `{"availableDrivers":1,"simulationDate":"2024-01-10"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var res dto.SimulationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), res.StartTime)
	assert.Len(t, res.DriverAssignments, 1)
}

func TestRunSimulationBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero drivers", `{"availableDrivers":0}`, "Available drivers must be greater than 0"},
		{"too many drivers", `{"availableDrivers":51}`, "Available drivers cannot exceed 50"},
		{"explicit zero hours", `{"availableDrivers":2,"maxHoursPerDay":0}`, "Max hours per day must be between 1 and 24"},
		{"bad start time", `{"availableDrivers":2,"startTime":"25:00"}`, "Start time must be in HH:MM format (24-hour)"},
		{"bad date", `{"availableDrivers":2,"simulationDate":"15/01/2024"}`, "Simulation date must be in YYYY-MM-DD format"},
		{"unknown field", `{"availableDrivers":2,"drivers":3}`, "invalid json body"},
		{"wrong type", `{"availableDrivers":"two"}`, "invalid json body"},
		{"two objects", `{"availableDrivers":2}{"availableDrivers":3}`, "body must contain only one JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(testStore(), nil, io.Discard)

			rr := do(t, h, http.MethodPost, "/simulations", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.want, errorMessage(t, rr))
		})
	}
}

func TestRunSimulationNotFound(t *testing.T) {
	rec := &fakeRecorder{}
	empty := memory.NewSnapshotStore(nil, nil, nil)
	h := newTestRouter(empty, rec, io.Discard)

	rr := do(t, h, http.MethodPost, "/simulations", `{"availableDrivers":2}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No drivers available", errorMessage(t, rr))
	assert.Equal(t, []string{ports.OutcomeNotFound}, rec.outcomes)
}

func TestRunSimulationInternalError(t *testing.T) {
	rec := &fakeRecorder{}
	store := testStore()
	h := NewRouter(Dependencies{
		Drivers:          store,
		Routes:           store,
		Orders:           brokenOrders{},
		Recorder:         rec,
		Logger:           zerolog.Nop(),
		DefaultMaxHours:  8,
		DefaultStartTime: "08:00",
	})

	rr := do(t, h, http.MethodPost, "/simulations", `{"availableDrivers":2}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal server error", errorMessage(t, rr))
	assert.Equal(t, []string{ports.OutcomeError}, rec.outcomes)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(testStore(), nil, io.Discard)

	rr := do(t, h, http.MethodGet, "/simulations", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))

	rr = do(t, h, http.MethodPost, "/drivers", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	store := testStore()
	withoutMetrics := newTestRouter(store, nil, io.Discard)
	assert.Equal(t, http.StatusNotFound, do(t, withoutMetrics, http.MethodGet, "/metrics", "").Code)

	withMetrics := NewRouter(Dependencies{
		Drivers: store,
		Routes:  store,
		Orders:  store,
		Logger:  zerolog.Nop(),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "sim_runs_total 1\n")
		}),
	})
	rr := do(t, withMetrics, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "sim_runs_total")
}
