package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// TrafficLevel is the congestion class of a route.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "Low"
	TrafficMedium TrafficLevel = "Medium"
	TrafficHigh   TrafficLevel = "High"
)

const (
	fuelCostPerKm             = 5.0
	highTrafficSurchargePerKm = 2.0
)

var trafficMultipliers = map[TrafficLevel]float64{
	TrafficLow:    1.0,
	TrafficMedium: 1.2,
	TrafficHigh:   1.5,
}

// ParseTrafficLevel accepts exactly "Low", "Medium" or "High".
func ParseTrafficLevel(s string) (TrafficLevel, error) {
	lvl := TrafficLevel(strings.TrimSpace(s))
	if _, ok := trafficMultipliers[lvl]; !ok {
		return "", fmt.Errorf("parse traffic level: unknown level %q", s)
	}
	return lvl, nil
}

// Multiplier returns the travel time scale factor for the traffic level.
// Unknown levels scale by 1.0; they are rejected by Route.Validate before reaching the engine.
func (l TrafficLevel) Multiplier() float64 {
	if m, ok := trafficMultipliers[l]; ok {
		return m
	}
	return 1.0
}

// Represents a delivery route with static distance and travel time attributes.
// Routes are read-only snapshot values; derived figures are computed on demand.
type Route struct {
	RouteID         string
	DistanceKm      float64
	Traffic         TrafficLevel
	BaseTimeMinutes int
}

// Fuel cost in rupees: 5/km, plus a 2/km surcharge on high traffic routes.
func (r Route) FuelCost() float64 {
	cost := r.DistanceKm * fuelCostPerKm
	if r.Traffic == TrafficHigh {
		cost += r.DistanceKm * highTrafficSurchargePerKm
	}
	return cost
}

// Travel time in whole minutes after applying the traffic multiplier.
func (r Route) AdjustedTime() int {
	return int(math.Round(float64(r.BaseTimeMinutes) * r.Traffic.Multiplier()))
}

// AdjustedHours is AdjustedTime expressed in hours, used for shift capacity accounting.
func (r Route) AdjustedHours() float64 {
	return float64(r.AdjustedTime()) / 60
}

func (r Route) Validate() error {
	if strings.TrimSpace(r.RouteID) == "" {
		return errors.New("validate route: route id must not be empty")
	}
	if r.DistanceKm <= 0 {
		return fmt.Errorf("validate route %s: distance must be greater than 0, got %v", r.RouteID, r.DistanceKm)
	}
	if r.BaseTimeMinutes <= 0 {
		return fmt.Errorf("validate route %s: base time must be greater than 0, got %d", r.RouteID, r.BaseTimeMinutes)
	}
	if _, ok := trafficMultipliers[r.Traffic]; !ok {
		return fmt.Errorf("validate route %s: unknown traffic level %q", r.RouteID, r.Traffic)
	}
	return nil
}
