package physics

import "math"

const (
	DefaultCount       = 15
	DefaultWidth       = 500.0
	DefaultHeight      = 500.0
	DefaultRadius      = 10.0
	DefaultSpeed       = 5.0
	DefaultTolerance   = 2.0
	DefaultMaxAttempts = 10000
)

// Params is the process-wide configuration of one simulation.
type Params struct {
	Count     int
	Arena     Arena
	Radius    float64
	Speed     float64
	Tolerance float64
	// MaxAttempts caps rejection sampling per body. Zero means
	// DefaultMaxAttempts.
	MaxAttempts int
}

func DefaultParams() Params {
	return Params{
		Count:       DefaultCount,
		Arena:       Arena{Width: DefaultWidth, Height: DefaultHeight},
		Radius:      DefaultRadius,
		Speed:       DefaultSpeed,
		Tolerance:   DefaultTolerance,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate rejects parameters before any body is created.
func (p Params) Validate() error {
	if p.Count <= 0 {
		return &ConfigError{Field: "count", Value: float64(p.Count), Reason: "must be positive"}
	}
	if !finite(p.Radius) || p.Radius <= 0 {
		return &ConfigError{Field: "radius", Value: p.Radius, Reason: "must be positive"}
	}
	if !finite(p.Arena.Width) || p.Arena.Width < 2*p.Radius {
		return &ConfigError{Field: "width", Value: p.Arena.Width, Reason: "must be at least twice the radius"}
	}
	if !finite(p.Arena.Height) || p.Arena.Height < 2*p.Radius {
		return &ConfigError{Field: "height", Value: p.Arena.Height, Reason: "must be at least twice the radius"}
	}
	if !finite(p.Speed) || p.Speed < 0 {
		return &ConfigError{Field: "speed", Value: p.Speed, Reason: "must not be negative"}
	}
	if !finite(p.Tolerance) || p.Tolerance < 0 {
		return &ConfigError{Field: "tolerance", Value: p.Tolerance, Reason: "must not be negative"}
	}
	if p.MaxAttempts < 0 {
		return &ConfigError{Field: "max_attempts", Value: float64(p.MaxAttempts), Reason: "must not be negative"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
