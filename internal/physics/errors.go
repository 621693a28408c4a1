package physics

import (
	"errors"
	"fmt"
)

// Domain errors for the collision engine.
var (
	// ErrInvalidConfiguration indicates parameters no simulation can start from.
	ErrInvalidConfiguration = errors.New("physics: invalid configuration")

	// ErrPlacementExhausted indicates placement ran out of attempts for a body.
	ErrPlacementExhausted = errors.New("physics: placement exhausted")

	// ErrNoSuchBody indicates a body index outside the body set.
	ErrNoSuchBody = errors.New("physics: no such body")
)

// ConfigError names the parameter that failed validation.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %g %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// PlacementError reports which body could not be placed.
type PlacementError struct {
	Index    int
	Attempts int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s: body %d not placed after %d attempts", ErrPlacementExhausted, e.Index, e.Attempts)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementExhausted
}

// InvariantError is the panic value used when a data-model invariant is
// found broken at runtime. It is never returned as an error.
type InvariantError struct {
	Body    int
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("physics: invariant violated by body %d: %s", e.Body, e.Message)
}
