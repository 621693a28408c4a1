package sim

import "github.com/fabiodan/bouncy-colors/internal/physics"

// Frame is a consistent snapshot of a simulation between two ticks.
type Frame struct {
	Tick     int
	Bodies   []physics.Body
	Contacts []physics.Contact
	WallHits int
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(f Frame)
}

// Config controls a batch run. Ticks must be positive. When Record is set
// every RecordEvery-th frame is kept in the result (1 when zero).
type Config struct {
	Ticks       int
	Record      bool
	RecordEvery int
}

func DefaultConfig() Config {
	return Config{
		Ticks:       600,
		Record:      true,
		RecordEvery: 1,
	}
}

type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	TicksTaken int
	Contacts   int
	WallHits   int
}
