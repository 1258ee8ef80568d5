package domain

import "fmt"

// Per-driver accumulator built for a single simulation run.
// OrderIDs keeps assignment order. IsFatigued is copied from the driver
// when the run starts and never recomputed.
type DriverAssignment struct {
	DriverID             string
	DriverName           string
	OrderIDs             []string
	CumulativeHours      float64
	CumulativeDistanceKm float64
	IsFatigued           bool
}

func NewDriverAssignment(d Driver) *DriverAssignment {
	return &DriverAssignment{
		DriverID:   d.DriverID,
		DriverName: d.Name,
		OrderIDs:   []string{},
		IsFatigued: d.IsFatigued(),
	}
}

// CanAccept reports whether hours more work still fits in maxHours.
func (a *DriverAssignment) CanAccept(hours float64, maxHours float64) bool {
	return a.CumulativeHours+hours <= maxHours
}

// Accept a single order onto the driver's run.
func (a *DriverAssignment) Accept(orderID string, hours float64, distanceKm float64, maxHours float64) error {
	if !a.CanAccept(hours, maxHours) {
		return fmt.Errorf(
			"accept order: driver %s cannot take order %s (hours=%.2f+%.2f, max=%.2f)",
			a.DriverID, orderID, a.CumulativeHours, hours, maxHours,
		)
	}

	a.OrderIDs = append(a.OrderIDs, orderID)
	a.CumulativeHours += hours
	a.CumulativeDistanceKm += distanceKm
	return nil
}
