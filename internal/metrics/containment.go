package metrics

import (
	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/sim"
)

// Containment is the fraction of frames in which every body lies inside
// the arena. It should always be 1.
type Containment struct {
	name       string
	arena      physics.Arena
	violations int
	samples    int
}

func NewContainment(arena physics.Arena) *Containment {
	return &Containment{
		name:  "containment",
		arena: arena,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(f sim.Frame) {
	c.samples++
	for _, b := range f.Bodies {
		if !c.arena.Contains(b.Position, b.Radius()) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}

// Overlap is the fraction of frames that start the next tick with at least
// one overlapping pair, the residue single-pass pair resolution can leave
// behind in dense clusters.
type Overlap struct {
	name     string
	overlaps int
	samples  int
}

func NewOverlap() *Overlap {
	return &Overlap{name: "overlap"}
}

func (o *Overlap) Name() string { return o.name }

func (o *Overlap) Observe(f sim.Frame) {
	o.samples++
	if len(physics.Overlapping(f.Bodies)) > 0 {
		o.overlaps++
	}
}

func (o *Overlap) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return float64(o.overlaps) / float64(o.samples)
}

func (o *Overlap) Reset() {
	o.overlaps = 0
	o.samples = 0
}
