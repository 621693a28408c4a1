package physics

import (
	"math"

	"github.com/golang/geo/r2"
)

// Contact records one resolved pair. Speed is the closing speed along the
// line of centers before resolution; negative means the pair was already
// separating.
type Contact struct {
	I, J  int
	Speed float64
}

// ResolvePairs scans every unordered pair (i < j) once, in index order, and
// resolves each pair whose tentative circles overlap. Resolved pairs are
// appended to contacts, which is returned.
//
// A body resolved earlier in the scan is tested against later partners with
// its updated staged motion. There is no second pass.
func ResolvePairs(bodies []Body, stage Stage, contacts []Contact) []Contact {
	n := len(bodies)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mi, mj := &stage[i], &stage[j]
			if mi.Position.Sub(mj.Position).Norm() > bodies[i].radius+bodies[j].radius {
				continue
			}

			delta := mi.Position.Sub(mj.Position)
			speed := closingSpeed(delta, mi.Velocity, mj.Velocity)

			mi.Velocity, mj.Velocity = ResolvePair(
				bodies[i].mass, bodies[j].mass,
				delta,
				mi.Velocity, mj.Velocity,
			)

			// one extra micro-step so the pair separates within this tick
			mi.Position = mi.Position.Add(mi.Velocity)
			mj.Position = mj.Position.Add(mj.Velocity)

			contacts = append(contacts, Contact{I: i, J: j, Speed: speed})
		}
	}
	return contacts
}

// ResolvePair is the elastic collision of two bodies of masses mi and mj,
// where delta is position_i - position_j. Velocities are rotated into the
// frame aligned with the line of centers, the 1-D elastic formula is applied
// to the components along it, and the result is rotated back. Components
// perpendicular to the line of centers are unchanged.
func ResolvePair(mi, mj float64, delta, vi, vj r2.Point) (r2.Point, r2.Point) {
	theta := math.Atan2(delta.Y, delta.X)
	sin, cos := math.Sincos(theta)

	ai, ti := toFrame(vi, sin, cos)
	aj, tj := toFrame(vj, sin, cos)

	total := mi + mj
	ai2 := ((mi-mj)*ai + 2*mj*aj) / total
	aj2 := (2*mi*ai + (mj-mi)*aj) / total

	return fromFrame(ai2, ti, sin, cos), fromFrame(aj2, tj, sin, cos)
}

// toFrame returns the components of v along and perpendicular to the
// direction (cos, sin).
func toFrame(v r2.Point, sin, cos float64) (along, perp float64) {
	along = v.X*cos + v.Y*sin
	perp = v.Y*cos - v.X*sin
	return
}

func fromFrame(along, perp, sin, cos float64) r2.Point {
	return r2.Point{
		X: along*cos - perp*sin,
		Y: along*sin + perp*cos,
	}
}

// closingSpeed is the rate at which the gap along delta shrinks.
func closingSpeed(delta, vi, vj r2.Point) float64 {
	d := delta.Norm()
	if d == 0 {
		return vi.Sub(vj).Norm()
	}
	return -vi.Sub(vj).Dot(delta) / d
}

// Overlapping returns every pair (i < j) of bodies whose circles overlap.
func Overlapping(bodies []Body) [][2]int {
	var pairs [][2]int
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Overlaps(bodies[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
