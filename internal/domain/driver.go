package domain

import (
	"errors"
	"fmt"
	"strings"
)

// A driver who worked more than this many hours in the current shift is fatigued.
const FatigueShiftHours = 8.0

const (
	maxShiftHours    = 24.0
	maxPastWeekHours = 168.0
)

// Represents a driver as captured in a simulation snapshot.
type Driver struct {
	DriverID          string
	Name              string
	CurrentShiftHours float64
	PastWeekHours     float64
}

// IsFatigued reports whether the driver starts the run fatigued.
// The flag is taken from the snapshot and is not recomputed as hours accrue.
func (d Driver) IsFatigued() bool {
	return d.CurrentShiftHours > FatigueShiftHours
}

func (d Driver) Validate() error {
	if strings.TrimSpace(d.DriverID) == "" {
		return errors.New("validate driver: driver id must not be empty")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("validate driver %s: name must not be empty", d.DriverID)
	}
	if d.CurrentShiftHours < 0 || d.CurrentShiftHours > maxShiftHours {
		return fmt.Errorf("validate driver %s: current shift hours must be between 0 and 24, got %v", d.DriverID, d.CurrentShiftHours)
	}
	if d.PastWeekHours < 0 || d.PastWeekHours > maxPastWeekHours {
		return fmt.Errorf("validate driver %s: past week hours must be between 0 and 168, got %v", d.DriverID, d.PastWeekHours)
	}
	return nil
}
