package services

import (
	"delivery-sim-service/internal/domain"
	"math"
	"slices"
)

const (
	baseDriverScore   = 100.0
	fatiguePenalty    = 30.0
	perOrderPenalty   = 5.0
	perKmScorePenalty = 0.1
)

// AssignOrders allocates orders to drivers with a greedy earliest-deadline-first pass.
//
// Orders are visited by ascending deadline (stable for equal deadlines). Each
// order goes to the feasible driver with the highest score, where a driver is
// feasible while the route's adjusted time still fits in maxHoursPerDay. Equal
// scores keep the driver that appears first in drivers. Orders that no driver
// can take, or whose route is missing from routes, are left unassigned; there
// is no retry and no constraint relaxation.
//
// The returned slice has one entry per driver, in input order. Inputs are not modified.
func AssignOrders(
	drivers []domain.Driver,
	orders []domain.Order,
	routes map[string]domain.Route,
	maxHoursPerDay int,
) []*domain.DriverAssignment {
	assignments := make([]*domain.DriverAssignment, 0, len(drivers))
	for _, d := range drivers {
		assignments = append(assignments, domain.NewDriverAssignment(d))
	}

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b domain.Order) int {
		return a.DeliveryDeadline.Compare(b.DeliveryDeadline)
	})

	maxHours := float64(maxHoursPerDay)

	for _, order := range sorted {
		route, ok := routes[order.RouteID]
		if !ok {
			continue
		}
		hours := route.AdjustedHours()

		best := -1
		bestScore := 0.0
		for i, a := range assignments {
			if !a.CanAccept(hours, maxHours) {
				continue
			}
			// Strictly greater: the first driver seen wins ties.
			if s := driverScore(a); best == -1 || s > bestScore {
				best = i
				bestScore = s
			}
		}

		if best == -1 {
			continue
		}
		// Feasibility was checked above, so Accept cannot refuse the order.
		_ = assignments[best].Accept(order.OrderID, hours, route.DistanceKm, maxHours)
	}

	return assignments
}

// driverScore ranks a driver for the next order: fresh, lightly loaded drivers
// with little distance so far score highest. Never negative.
func driverScore(a *domain.DriverAssignment) float64 {
	score := baseDriverScore
	if a.IsFatigued {
		score -= fatiguePenalty
	}
	score -= perOrderPenalty * float64(len(a.OrderIDs))
	score -= perKmScorePenalty * a.CumulativeDistanceKm

	return math.Max(score, 0)
}

func indexRoutes(routes []domain.Route) map[string]domain.Route {
	byID := make(map[string]domain.Route, len(routes))
	for _, r := range routes {
		byID[r.RouteID] = r
	}
	return byID
}

// indexAssignments maps each assigned order id to the driver carrying it.
func indexAssignments(assignments []*domain.DriverAssignment) map[string]*domain.DriverAssignment {
	byOrder := make(map[string]*domain.DriverAssignment)
	for _, a := range assignments {
		for _, id := range a.OrderIDs {
			byOrder[id] = a
		}
	}
	return byOrder
}
