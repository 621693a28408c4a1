package physics

import (
	"math"

	"github.com/golang/geo/r2"
)

// NumVisualStates is the number of palette slots a body can cycle through.
const NumVisualStates = 4

// VisualState is a render-only tag. Physics never reads or writes it.
type VisualState uint8

// Next returns the tag following v, wrapping after the last palette slot.
func (v VisualState) Next() VisualState {
	return (v + 1) % NumVisualStates
}

// Body is a circular rigid body. Radius and mass are fixed at creation.
type Body struct {
	Position r2.Point
	Velocity r2.Point
	Visual   VisualState

	radius float64
	mass   float64
}

// NewBody returns a body of the given radius. Mass is twice the radius.
func NewBody(pos, vel r2.Point, radius float64) (Body, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Body{}, &ConfigError{Field: "radius", Value: radius, Reason: "must be positive and finite"}
	}
	return Body{
		Position: pos,
		Velocity: vel,
		radius:   radius,
		mass:     2 * radius,
	}, nil
}

func (b Body) Radius() float64 { return b.radius }
func (b Body) Mass() float64   { return b.mass }

// Momentum returns m·v.
func (b Body) Momentum() r2.Point {
	return b.Velocity.Mul(b.mass)
}

// KineticEnergy returns ½·m·|v|².
func (b Body) KineticEnergy() float64 {
	return 0.5 * b.mass * b.Velocity.Dot(b.Velocity)
}

// Overlaps reports whether the two circles touch or intersect.
func (b Body) Overlaps(o Body) bool {
	return b.Position.Sub(o.Position).Norm() <= b.radius+o.radius
}

// Arena is the rectangle [0, Width] x [0, Height].
type Arena struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether a circle of radius r centred at p lies fully
// inside the arena.
func (a Arena) Contains(p r2.Point, r float64) bool {
	return p.X >= r && p.X <= a.Width-r && p.Y >= r && p.Y <= a.Height-r
}

// Clamp moves p onto the nearest point where a circle of radius r fits.
func (a Arena) Clamp(p r2.Point, r float64) r2.Point {
	return r2.Point{
		X: math.Min(math.Max(p.X, r), a.Width-r),
		Y: math.Min(math.Max(p.Y, r), a.Height-r),
	}
}

// Motion is the tentative position and velocity of one body for the tick
// in progress.
type Motion struct {
	Position r2.Point
	Velocity r2.Point
}

// Stage holds one Motion per body, indexed like the body slice.
type Stage []Motion

// Commit copies every staged motion into the bodies.
func (s Stage) Commit(bodies []Body) {
	for i := range bodies {
		bodies[i].Position = s[i].Position
		bodies[i].Velocity = s[i].Velocity
	}
}

// TotalMomentum sums m·v over all bodies.
func TotalMomentum(bodies []Body) r2.Point {
	var p r2.Point
	for _, b := range bodies {
		p = p.Add(b.Momentum())
	}
	return p
}

// TotalKineticEnergy sums ½·m·|v|² over all bodies.
func TotalKineticEnergy(bodies []Body) float64 {
	e := 0.0
	for _, b := range bodies {
		e += b.KineticEnergy()
	}
	return e
}
