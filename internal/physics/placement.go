package physics

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// Place returns p.Count bodies at random, mutually non-overlapping
// positions, each heading in a random direction at p.Speed.
//
// Candidates are drawn uniformly from [r, dim-r] on each axis and rejected
// until they clear every placed body. When a body exhausts p.MaxAttempts
// no bodies are returned and the error wraps ErrPlacementExhausted.
func Place(rng *rand.Rand, p Params) ([]Body, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	bodies := make([]Body, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		pos, ok := sampleFree(rng, p.Arena, p.Radius, bodies, maxAttempts)
		if !ok {
			return nil, &PlacementError{Index: i, Attempts: maxAttempts}
		}
		b, err := NewBody(pos, heading(rng, p.Speed), p.Radius)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func sampleFree(rng *rand.Rand, a Arena, r float64, placed []Body, maxAttempts int) (r2.Point, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c := r2.Point{
			X: r + rng.Float64()*(a.Width-2*r),
			Y: r + rng.Float64()*(a.Height-2*r),
		}
		if fits(c, r, placed) {
			return c, true
		}
	}
	return r2.Point{}, false
}

func fits(c r2.Point, r float64, placed []Body) bool {
	for _, b := range placed {
		if c.Sub(b.Position).Norm() <= r+b.radius {
			return false
		}
	}
	return true
}

// heading draws a whole number of degrees in [0, 360] and returns the
// velocity of that direction at the given speed.
func heading(rng *rand.Rand, speed float64) r2.Point {
	rad := float64(rng.Intn(361)) * math.Pi / 180
	return r2.Point{X: speed * math.Cos(rad), Y: speed * math.Sin(rad)}
}
