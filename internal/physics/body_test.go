package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestNewBody(t *testing.T) {
	b, err := NewBody(r2.Point{X: 1, Y: 2}, r2.Point{X: 3, Y: 4}, 10)
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}
	if b.Radius() != 10 {
		t.Errorf("Radius() = %v, want 10", b.Radius())
	}
	if b.Mass() != 20 {
		t.Errorf("Mass() = %v, want 20", b.Mass())
	}
	if b.Visual != 0 {
		t.Errorf("Visual = %v, want 0", b.Visual)
	}
}

func TestNewBody_InvalidRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(r2.Point{}, r2.Point{}, tt.radius)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestVisualState_Next(t *testing.T) {
	v := VisualState(0)
	for i := 0; i < NumVisualStates; i++ {
		v = v.Next()
	}
	if v != 0 {
		t.Errorf("expected wrap to 0 after %d steps, got %d", NumVisualStates, v)
	}
}

func TestArena_ContainsAndClamp(t *testing.T) {
	a := Arena{Width: 100, Height: 50}

	tests := []struct {
		name    string
		p       r2.Point
		inside  bool
		clamped r2.Point
	}{
		{"centre", r2.Point{X: 50, Y: 25}, true, r2.Point{X: 50, Y: 25}},
		{"on boundary", r2.Point{X: 10, Y: 40}, true, r2.Point{X: 10, Y: 40}},
		{"past right", r2.Point{X: 95, Y: 25}, false, r2.Point{X: 90, Y: 25}},
		{"past corner", r2.Point{X: -3, Y: 60}, false, r2.Point{X: 10, Y: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.p, 10); got != tt.inside {
				t.Errorf("Contains() = %v, want %v", got, tt.inside)
			}
			if got := a.Clamp(tt.p, 10); got != tt.clamped {
				t.Errorf("Clamp() = %v, want %v", got, tt.clamped)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		field  string
	}{
		{"zero count", func(p *Params) { p.Count = 0 }, "count"},
		{"negative count", func(p *Params) { p.Count = -3 }, "count"},
		{"zero radius", func(p *Params) { p.Radius = 0 }, "radius"},
		{"narrow arena", func(p *Params) { p.Arena.Width = 19 }, "width"},
		{"short arena", func(p *Params) { p.Arena.Height = 5 }, "height"},
		{"negative speed", func(p *Params) { p.Speed = -1 }, "speed"},
		{"NaN tolerance", func(p *Params) { p.Tolerance = math.NaN() }, "tolerance"},
		{"negative attempts", func(p *Params) { p.MaxAttempts = -1 }, "max_attempts"},
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params rejected: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("expected ConfigError on %q, got %v", tt.field, err)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	a, _ := NewBody(r2.Point{}, r2.Point{X: 1, Y: 0}, 1)
	b, _ := NewBody(r2.Point{X: 5}, r2.Point{X: 0, Y: -2}, 2)
	bodies := []Body{a, b}

	p := TotalMomentum(bodies)
	if p.X != 2 || p.Y != -8 {
		t.Errorf("TotalMomentum = %v, want (2, -8)", p)
	}

	// ½·2·1 + ½·4·4
	if e := TotalKineticEnergy(bodies); e != 9 {
		t.Errorf("TotalKineticEnergy = %v, want 9", e)
	}
}
