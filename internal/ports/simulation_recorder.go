package ports

import (
	"delivery-sim-service/internal/domain"
	"time"
)

// Outcome labels of a simulation run, as seen by observability sinks.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeNotFound        = "not_found"
	OutcomeError           = "error"
)

// Contract for recording simulation runs for observability.
type SimulationRecorder interface {
	// Record a completed run. res is nil unless outcome is OutcomeSuccess.
	RecordSimulation(outcome string, res *domain.SimulationResult, dur time.Duration) error
}
