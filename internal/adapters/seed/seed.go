package seed

import (
	"delivery-sim-service/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type DriverSeed struct {
	DriverID          string  `json:"driver_id"`
	Name              string  `json:"name"`
	CurrentShiftHours float64 `json:"current_shift_hours"`
	PastWeekHours     float64 `json:"past_week_hours"`
}

type RouteSeed struct {
	RouteID         string  `json:"route_id"`
	DistanceKm      float64 `json:"distance_km"`
	TrafficLevel    string  `json:"traffic_level"`
	BaseTimeMinutes int     `json:"base_time_minutes"`
}

type OrderSeed struct {
	OrderID          string    `json:"order_id"`
	ValueRs          float64   `json:"value_rs"`
	RouteID          string    `json:"route_id"`
	DeliveryDeadline time.Time `json:"delivery_deadline"`
	Delivered        bool      `json:"delivered"`
}

// File is the on-disk layout shared by database seeding and snapshot runs.
type File struct {
	Drivers []DriverSeed `json:"drivers"`
	Routes  []RouteSeed  `json:"routes"`
	Orders  []OrderSeed  `json:"orders"`
}

// Snapshot holds validated entities in file order.
type Snapshot struct {
	Drivers []domain.Driver
	Routes  []domain.Route
	Orders  []domain.Order
}

// Load reads and validates a seed file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: open %q: %w", path, err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load seed %q: %w", path, err)
	}
	return snap, nil
}

// Decode parses a seed document and validates every entity.
// Ids must be unique per entity kind. Orders may reference routes that are
// absent from the file; the simulation reports those when it runs.
func Decode(r io.Reader) (*Snapshot, error) {
	var data File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed: parse json: %w", err)
	}

	snap := &Snapshot{
		Drivers: make([]domain.Driver, 0, len(data.Drivers)),
		Routes:  make([]domain.Route, 0, len(data.Routes)),
		Orders:  make([]domain.Order, 0, len(data.Orders)),
	}

	seen := map[string]struct{}{}
	for i, item := range data.Drivers {
		d := domain.Driver{
			DriverID:          strings.TrimSpace(item.DriverID),
			Name:              strings.TrimSpace(item.Name),
			CurrentShiftHours: item.CurrentShiftHours,
			PastWeekHours:     item.PastWeekHours,
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("decode seed: driver at index %d: %w", i, err)
		}
		if _, dup := seen[d.DriverID]; dup {
			return nil, fmt.Errorf("decode seed: duplicate driver id %q", d.DriverID)
		}
		seen[d.DriverID] = struct{}{}
		snap.Drivers = append(snap.Drivers, d)
	}

	seen = map[string]struct{}{}
	for i, item := range data.Routes {
		lvl, err := domain.ParseTrafficLevel(item.TrafficLevel)
		if err != nil {
			return nil, fmt.Errorf("decode seed: route at index %d: %w", i, err)
		}
		rt := domain.Route{
			RouteID:         strings.TrimSpace(item.RouteID),
			DistanceKm:      item.DistanceKm,
			Traffic:         lvl,
			BaseTimeMinutes: item.BaseTimeMinutes,
		}
		if err := rt.Validate(); err != nil {
			return nil, fmt.Errorf("decode seed: route at index %d: %w", i, err)
		}
		if _, dup := seen[rt.RouteID]; dup {
			return nil, fmt.Errorf("decode seed: duplicate route id %q", rt.RouteID)
		}
		seen[rt.RouteID] = struct{}{}
		snap.Routes = append(snap.Routes, rt)
	}

	seen = map[string]struct{}{}
	for i, item := range data.Orders {
		o := domain.Order{
			OrderID:          strings.TrimSpace(item.OrderID),
			ValueRs:          item.ValueRs,
			RouteID:          strings.TrimSpace(item.RouteID),
			DeliveryDeadline: item.DeliveryDeadline,
			Delivered:        item.Delivered,
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("decode seed: order at index %d: %w", i, err)
		}
		if _, dup := seen[o.OrderID]; dup {
			return nil, fmt.Errorf("decode seed: duplicate order id %q", o.OrderID)
		}
		seen[o.OrderID] = struct{}{}
		snap.Orders = append(snap.Orders, o)
	}

	return snap, nil
}
