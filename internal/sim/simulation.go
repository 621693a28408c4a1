package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/golang/geo/r2"

	"github.com/fabiodan/bouncy-colors/internal/physics"
)

// Simulation owns an arena and its bodies. All methods are safe to call
// from several goroutines; Tick and the accessors exclude each other.
type Simulation struct {
	mu        sync.Mutex
	arena     physics.Arena
	tolerance float64
	bodies    []physics.Body
	stage     physics.Stage
	contacts  []physics.Contact
	wallHits  int
	tick      int
}

// New validates p and places p.Count bodies using rng. It never returns a
// partially placed simulation.
func New(p physics.Params, rng *rand.Rand) (*Simulation, error) {
	bodies, err := physics.Place(rng, p)
	if err != nil {
		return nil, err
	}
	return newSimulation(p.Arena, p.Tolerance, bodies), nil
}

// NewFromBodies builds a simulation from explicit bodies. Every body must
// fit inside the arena and no two bodies may overlap.
func NewFromBodies(arena physics.Arena, tolerance float64, bodies []physics.Body) (*Simulation, error) {
	if len(bodies) == 0 {
		return nil, &physics.ConfigError{Field: "count", Value: 0, Reason: "must be positive"}
	}
	if !finite(tolerance) || tolerance < 0 {
		return nil, &physics.ConfigError{Field: "tolerance", Value: tolerance, Reason: "must be finite and not negative"}
	}
	for i, b := range bodies {
		if b.Radius() <= 0 {
			return nil, &physics.ConfigError{Field: fmt.Sprintf("bodies[%d].radius", i), Value: b.Radius(), Reason: "must be positive"}
		}
		if !finite(b.Velocity.X) {
			return nil, &physics.ConfigError{Field: fmt.Sprintf("bodies[%d].velocity.x", i), Value: b.Velocity.X, Reason: "must be finite"}
		}
		if !finite(b.Velocity.Y) {
			return nil, &physics.ConfigError{Field: fmt.Sprintf("bodies[%d].velocity.y", i), Value: b.Velocity.Y, Reason: "must be finite"}
		}
		if !arena.Contains(b.Position, b.Radius()) {
			return nil, &physics.ConfigError{Field: fmt.Sprintf("bodies[%d].position", i), Value: b.Position.X, Reason: "is outside the arena"}
		}
	}
	if pairs := physics.Overlapping(bodies); len(pairs) > 0 {
		return nil, &physics.ConfigError{Field: fmt.Sprintf("bodies[%d]", pairs[0][1]), Value: float64(pairs[0][0]), Reason: "overlaps another body"}
	}

	own := make([]physics.Body, len(bodies))
	copy(own, bodies)
	return newSimulation(arena, tolerance, own), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func newSimulation(arena physics.Arena, tolerance float64, bodies []physics.Body) *Simulation {
	return &Simulation{
		arena:     arena,
		tolerance: tolerance,
		bodies:    bodies,
		stage:     make(physics.Stage, len(bodies)),
		contacts:  make([]physics.Contact, 0, len(bodies)),
	}
}

// Tick advances the simulation by one step: integrate, resolve walls,
// resolve pairs, then commit every staged motion at once.
func (s *Simulation) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkInvariants()

	physics.Integrate(s.bodies, s.stage)
	s.wallHits = physics.ResolveWalls(s.bodies, s.stage, s.arena)
	s.contacts = physics.ResolvePairs(s.bodies, s.stage, s.contacts[:0])

	// The wall rule corrects one axis per tick and the pair micro-step may
	// cross a wall; neither may leave a committed body outside the arena.
	for i := range s.stage {
		s.stage[i].Position = s.arena.Clamp(s.stage[i].Position, s.bodies[i].Radius())
	}

	s.stage.Commit(s.bodies)
	s.tick++
}

func (s *Simulation) checkInvariants() {
	for i, b := range s.bodies {
		if !(b.Radius() > 0) || !(b.Mass() > 0) {
			panic(&physics.InvariantError{Body: i, Message: "non-positive radius or mass"})
		}
		if !s.arena.Contains(b.Position, b.Radius()) {
			panic(&physics.InvariantError{Body: i, Message: fmt.Sprintf("position %v outside arena", b.Position)})
		}
	}
}

// Bodies returns a copy of the committed bodies.
func (s *Simulation) Bodies() []physics.Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyBodies()
}

func (s *Simulation) copyBodies() []physics.Body {
	out := make([]physics.Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Snapshot returns the committed state together with what happened on the
// last tick.
func (s *Simulation) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := make([]physics.Contact, len(s.contacts))
	copy(contacts, s.contacts)
	return Frame{
		Tick:     s.tick,
		Bodies:   s.copyBodies(),
		Contacts: contacts,
		WallHits: s.wallHits,
	}
}

// SetVisualState sets the render tag of body i. Tags past the palette
// wrap around.
func (s *Simulation) SetVisualState(i int, v physics.VisualState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.bodies) {
		return fmt.Errorf("%w: index %d of %d", physics.ErrNoSuchBody, i, len(s.bodies))
	}
	s.bodies[i].Visual = v % physics.NumVisualStates
	return nil
}

// CycleVisualState advances the render tag of body i and returns it.
func (s *Simulation) CycleVisualState(i int) (physics.VisualState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.bodies) {
		return 0, fmt.Errorf("%w: index %d of %d", physics.ErrNoSuchBody, i, len(s.bodies))
	}
	s.bodies[i].Visual = s.bodies[i].Visual.Next()
	return s.bodies[i].Visual, nil
}

// LocateBodyAt returns the body nearest to (x, y) among those whose center
// lies within radius + tolerance of it. Ties keep the lower index.
func (s *Simulation) LocateBodyAt(x, y float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := r2.Point{X: x, Y: y}
	best, bestDist := -1, math.Inf(1)
	for i, b := range s.bodies {
		d := p.Sub(b.Position).Norm()
		if d > b.Radius()+s.tolerance {
			continue
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

func (s *Simulation) Arena() physics.Arena { return s.arena }

func (s *Simulation) Tolerance() float64 { return s.tolerance }

func (s *Simulation) Len() int { return len(s.bodies) }

// Ticks returns the number of completed ticks.
func (s *Simulation) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}
