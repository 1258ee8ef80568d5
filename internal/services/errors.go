package services

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is for the two caller-facing failure classes.
// Any other error returned by RunSimulation comes from the data-access layer.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// ValidationError reports a simulation request outside its allowed shape or range.
// Message is meant to be shown to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a snapshot that cannot be simulated: no drivers, no
// pending orders, or an order pointing at a route that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func validationError(msg string) error { return &ValidationError{Message: msg} }

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
