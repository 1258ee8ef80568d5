package services

import (
	"context"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/platform/obs"
	"delivery-sim-service/internal/ports"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	MinAvailableDrivers = 1
	MaxAvailableDrivers = 50
	MinHoursPerDay      = 1
	MaxHoursPerDay      = 24
)

var startTimePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

type RunSimulationRequest struct {
	AvailableDrivers int
	// Departure time of every driver, "HH:MM" on a 24-hour clock.
	StartTime      string
	MaxHoursPerDay int
	// Calendar date StartTime is anchored to. The zero value selects the UTC
	// date of the earliest pending delivery deadline.
	SimulationDate time.Time
}

// Validate checks the request shape. Messages are caller facing.
func (r RunSimulationRequest) Validate() error {
	if r.AvailableDrivers < MinAvailableDrivers {
		return validationError("Available drivers must be greater than 0")
	}
	if r.AvailableDrivers > MaxAvailableDrivers {
		return validationError("Available drivers cannot exceed 50")
	}
	if r.MaxHoursPerDay < MinHoursPerDay || r.MaxHoursPerDay > MaxHoursPerDay {
		return validationError("Max hours per day must be between 1 and 24")
	}
	if !startTimePattern.MatchString(strings.TrimSpace(r.StartTime)) {
		return validationError("Start time must be in HH:MM format (24-hour)")
	}
	return nil
}

// RunSimulation validates req, fetches a fresh snapshot and runs the delivery
// simulation over it.
//
// The three fetches run concurrently; the first failure cancels the rest and is
// returned wrapped. After the fetch the computation is synchronous and touches
// only state local to this call, so concurrent runs do not interact. The run is
// all-or-nothing: on error no partial result is returned.
func RunSimulation(
	ctx context.Context,
	req RunSimulationRequest,
	driverRepo ports.DriverRepository,
	routeRepo ports.RouteRepository,
	orderRepo ports.OrderRepository,
) (_ *domain.SimulationResult, err error) {
	defer obs.Time(ctx, "services.RunSimulation")(&err)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		drivers []domain.Driver
		routes  []domain.Route
		orders  []domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds, err := driverRepo.ListDrivers(gctx, req.AvailableDrivers)
		if err != nil {
			return fmt.Errorf("fetch drivers: %w", err)
		}
		drivers = ds
		return nil
	})
	g.Go(func() error {
		rs, err := routeRepo.ListRoutes(gctx)
		if err != nil {
			return fmt.Errorf("fetch routes: %w", err)
		}
		routes = rs
		return nil
	})
	g.Go(func() error {
		pending, err := orderRepo.ListPendingOrders(gctx)
		if err != nil {
			return fmt.Errorf("fetch pending orders: %w", err)
		}
		orders = pending
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	if len(drivers) > req.AvailableDrivers {
		drivers = drivers[:req.AvailableDrivers]
	}
	if len(drivers) == 0 {
		return nil, notFoundf("No drivers available")
	}
	if len(orders) == 0 {
		return nil, notFoundf("No pending orders found")
	}

	start, err := anchorStartTime(req, orders)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	routesByID := indexRoutes(routes)
	assignments := AssignOrders(drivers, orders, routesByID, req.MaxHoursPerDay)
	byOrder := indexAssignments(assignments)

	results := make([]domain.OrderResult, 0, len(orders))
	for _, o := range orders {
		route, ok := routesByID[o.RouteID]
		if !ok {
			return nil, notFoundf("Route %s not found for order %s", o.RouteID, o.OrderID)
		}
		results = append(results, EvaluateOrder(o, route, byOrder[o.OrderID], start))
	}

	res := &domain.SimulationResult{
		KPIs:              AggregateKPIs(results),
		StartTime:         start,
		DriverAssignments: make([]domain.DriverAssignment, 0, len(assignments)),
		OrderResults:      results,
	}
	for _, a := range assignments {
		res.DriverAssignments = append(res.DriverAssignments, *a)
	}

	return res, nil
}

// anchorStartTime places the request's HH:MM on its simulation date, or on the
// date of the earliest deadline among orders. Times are UTC.
func anchorStartTime(req RunSimulationRequest, orders []domain.Order) (time.Time, error) {
	hour, minute, err := ParseClock(req.StartTime)
	if err != nil {
		return time.Time{}, err
	}

	day := req.SimulationDate
	if day.IsZero() {
		for _, o := range orders {
			if day.IsZero() || o.DeliveryDeadline.Before(day) {
				day = o.DeliveryDeadline
			}
		}
	}
	y, m, d := day.UTC().Date()

	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC), nil
}

// ParseClock splits a 24-hour "HH:MM" string into hour and minute.
func ParseClock(s string) (int, int, error) {
	match := startTimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, 0, validationError("Start time must be in HH:MM format (24-hour)")
	}
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	return hour, minute, nil
}
