package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/sim"
)

func body(t *testing.T, x, y, vx, vy, r float64) physics.Body {
	t.Helper()
	b, err := physics.NewBody(r2.Point{X: x, Y: y}, r2.Point{X: vx, Y: vy}, r)
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}
	return b
}

func TestEnergy(t *testing.T) {
	m := NewEnergy()
	f := sim.Frame{Bodies: []physics.Body{
		body(t, 50, 50, 3, 4, 10),  // ½·20·25 = 250
		body(t, 150, 50, 0, 1, 5), // ½·10·1 = 5
	}}

	m.Observe(f)
	if math.Abs(m.Value()-255) > 1e-9 {
		t.Errorf("expected energy 255, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift_ConservedOverRun(t *testing.T) {
	p := physics.DefaultParams()
	p.Count = 25
	s, err := sim.New(p, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	drift := NewEnergyDrift()
	r := sim.NewRunner(s)
	r.AddMetric(drift)

	if _, err := r.Run(t.Context(), sim.Config{Ticks: 1000}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if drift.Value() > 1e-9 {
		t.Errorf("kinetic energy drifted by %e", drift.Value())
	}
}

func TestContactsAndWallHits(t *testing.T) {
	c, w := NewContacts(), NewWallHits()
	frames := []sim.Frame{
		{Contacts: []physics.Contact{{I: 0, J: 1}}, WallHits: 2},
		{WallHits: 1},
		{Contacts: []physics.Contact{{I: 1, J: 2}, {I: 0, J: 3}}},
	}
	for _, f := range frames {
		c.Observe(f)
		w.Observe(f)
	}

	if c.Value() != 3 {
		t.Errorf("expected 3 contacts, got %v", c.Value())
	}
	if w.Value() != 3 {
		t.Errorf("expected 3 wall hits, got %v", w.Value())
	}
}

func TestContainment(t *testing.T) {
	arena := physics.Arena{Width: 100, Height: 100}
	m := NewContainment(arena)

	if m.Value() != 1 {
		t.Errorf("expected 1 with no samples, got %v", m.Value())
	}

	m.Observe(sim.Frame{Bodies: []physics.Body{body(t, 50, 50, 0, 0, 10)}})
	m.Observe(sim.Frame{Bodies: []physics.Body{body(t, 95, 50, 0, 0, 10)}})

	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %v", m.Value())
	}
}

func TestOverlap(t *testing.T) {
	m := NewOverlap()
	m.Observe(sim.Frame{Bodies: []physics.Body{body(t, 50, 50, 0, 0, 10), body(t, 65, 50, 0, 0, 10)}})
	m.Observe(sim.Frame{Bodies: []physics.Body{body(t, 50, 50, 0, 0, 10), body(t, 85, 50, 0, 0, 10)}})
	m.Observe(sim.Frame{Bodies: []physics.Body{body(t, 50, 50, 0, 0, 10)}})
	m.Observe(sim.Frame{})

	if m.Value() != 0.25 {
		t.Errorf("expected 0.25, got %v", m.Value())
	}
}
