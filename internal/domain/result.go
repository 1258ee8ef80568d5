package domain

import "time"

// DeliveryStatus is the projected outcome of an order against its deadline.
type DeliveryStatus string

const (
	DeliveryOnTime DeliveryStatus = "OnTime"
	DeliveryLate   DeliveryStatus = "Late"
)

// Driver id reported for orders no driver could take.
const UnassignedDriverID = "unassigned"

// Economics and timing of a single order within one simulation run.
type OrderResult struct {
	OrderID      string
	DriverID     string
	RouteID      string
	OrderValue   float64
	Status       DeliveryStatus
	DeliveryTime time.Time
	Deadline     time.Time
	FuelCost     float64
	Penalty      int
	Bonus        float64
	Profit       float64
}

func (r OrderResult) IsOnTime() bool { return r.Status == DeliveryOnTime }

func (r OrderResult) IsAssigned() bool { return r.DriverID != UnassignedDriverID }

// Fleet level totals for one run. Money figures are rounded to two decimals,
// penalties stay an integer sum.
type KPIs struct {
	TotalProfit      float64
	EfficiencyScore  float64
	OnTimeDeliveries int
	LateDeliveries   int
	UnassignedOrders int
	TotalOrders      int
	FuelCost         float64
	Penalties        int
	Bonuses          float64
}

// Output of one simulation run. Nothing in it is persisted.
type SimulationResult struct {
	KPIs
	StartTime         time.Time
	DriverAssignments []DriverAssignment
	OrderResults      []OrderResult
}
