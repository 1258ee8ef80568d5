package dto

import "time"

// Optional fields are pointers so an explicit zero can be told apart from a
// missing value: a missing field takes the server default, a zero is rejected.
type SimulationRequest struct {
	AvailableDrivers int     `json:"availableDrivers"`
	StartTime        *string `json:"startTime"`
	MaxHoursPerDay   *int    `json:"maxHoursPerDay"`
	SimulationDate   string  `json:"simulationDate,omitempty"`
}

type DriverAssignmentResponse struct {
	DriverID       string   `json:"driverId"`
	DriverName     string   `json:"driverName"`
	AssignedOrders []string `json:"assignedOrders"`
	TotalHours     float64  `json:"totalHours"`
	TotalDistance  float64  `json:"totalDistance"`
	IsFatigued     bool     `json:"isFatigued"`
}

type OrderResultResponse struct {
	OrderID        string    `json:"orderId"`
	DriverID       string    `json:"driverId"`
	RouteID        string    `json:"routeId"`
	OrderValue     float64   `json:"orderValue"`
	DeliveryStatus string    `json:"deliveryStatus"`
	DeliveryTime   time.Time `json:"deliveryTime"`
	Deadline       time.Time `json:"deadline"`
	FuelCost       float64   `json:"fuelCost"`
	Penalty        int       `json:"penalty"`
	Bonus          float64   `json:"bonus"`
	Profit         float64   `json:"profit"`
}

type SimulationResponse struct {
	TotalProfit       float64                    `json:"totalProfit"`
	EfficiencyScore   float64                    `json:"efficiencyScore"`
	OnTimeDeliveries  int                        `json:"onTimeDeliveries"`
	LateDeliveries    int                        `json:"lateDeliveries"`
	FuelCost          float64                    `json:"fuelCost"`
	Penalties         int                        `json:"penalties"`
	Bonuses           float64                    `json:"bonuses"`
	TotalOrders       int                        `json:"totalOrders"`
	UnassignedOrders  int                        `json:"unassignedOrders"`
	StartTime         time.Time                  `json:"startTime"`
	DriverAssignments []DriverAssignmentResponse `json:"driverAssignments"`
	OrderResults      []OrderResultResponse      `json:"orderResults"`
}
