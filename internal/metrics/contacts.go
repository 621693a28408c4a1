package metrics

import "github.com/fabiodan/bouncy-colors/internal/sim"

// Contacts counts resolved body pairs over a run.
type Contacts struct {
	name  string
	count int
}

func NewContacts() *Contacts {
	return &Contacts{name: "contacts"}
}

func (c *Contacts) Name() string { return c.name }

func (c *Contacts) Observe(f sim.Frame) {
	c.count += len(f.Contacts)
}

func (c *Contacts) Value() float64 {
	return float64(c.count)
}

func (c *Contacts) Reset() {
	c.count = 0
}

// WallHits counts wall reflections over a run.
type WallHits struct {
	name  string
	count int
}

func NewWallHits() *WallHits {
	return &WallHits{name: "wall_hits"}
}

func (w *WallHits) Name() string { return w.name }

func (w *WallHits) Observe(f sim.Frame) {
	w.count += f.WallHits
}

func (w *WallHits) Value() float64 {
	return float64(w.count)
}

func (w *WallHits) Reset() {
	w.count = 0
}
