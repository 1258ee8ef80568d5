package dto

import "time"

type DriverResponse struct {
	DriverID          string  `json:"driverId"`
	Name              string  `json:"name"`
	CurrentShiftHours float64 `json:"currentShiftHours"`
	PastWeekHours     float64 `json:"pastWeekHours"`
	IsFatigued        bool    `json:"isFatigued"`
}

type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

type RouteResponse struct {
	RouteID         string  `json:"routeId"`
	DistanceKm      float64 `json:"distance"`
	TrafficLevel    string  `json:"trafficLevel"`
	BaseTimeMinutes int     `json:"baseTime"`
	FuelCost        float64 `json:"fuelCost"`
	AdjustedTime    int     `json:"adjustedTime"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type OrderResponse struct {
	OrderID          string    `json:"orderId"`
	ValueRs          float64   `json:"value"`
	RouteID          string    `json:"assignedRouteId"`
	DeliveryDeadline time.Time `json:"deliveryDeadline"`
	Delivered        bool      `json:"delivered"`
	IsHighValue      bool      `json:"isHighValue"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
