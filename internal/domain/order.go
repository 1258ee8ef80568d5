package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// Orders above this value earn an on-time bonus.
	HighValueThreshold = 1000.0

	minOrderValue = 1.0
	maxOrderValue = 100000.0
)

// Represents a customer order bound to a single route.
// Only orders that are not yet delivered take part in a simulation.
type Order struct {
	OrderID          string
	ValueRs          float64
	RouteID          string
	DeliveryDeadline time.Time
	Delivered        bool
}

func (o Order) IsHighValue() bool {
	return o.ValueRs > HighValueThreshold
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.OrderID) == "" {
		return errors.New("validate order: order id must not be empty")
	}
	if strings.TrimSpace(o.RouteID) == "" {
		return fmt.Errorf("validate order %s: route id must not be empty", o.OrderID)
	}
	if o.ValueRs < minOrderValue || o.ValueRs > maxOrderValue {
		return fmt.Errorf("validate order %s: value must be between 1 and 100000, got %v", o.OrderID, o.ValueRs)
	}
	if o.DeliveryDeadline.IsZero() {
		return fmt.Errorf("validate order %s: delivery deadline is required", o.OrderID)
	}
	return nil
}
