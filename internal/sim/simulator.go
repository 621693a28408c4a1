package sim

import (
	"context"
	"fmt"
)

// Runner drives a Simulation for a fixed number of ticks and feeds every
// frame to its metrics and observers.
type Runner struct {
	sim       *Simulation
	metrics   []Metric
	observers []Observer
}

func NewRunner(s *Simulation) *Runner {
	return &Runner{
		sim:       s,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Simulation returns the driven simulation.
func (r *Runner) Simulation() *Simulation { return r.sim }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	every := cfg.RecordEvery
	if every == 0 {
		every = 1
	}

	result := &Result{
		Metrics: make(map[string]float64),
	}
	if cfg.Record {
		result.Frames = make([]Frame, 0, cfg.Ticks/every+1)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	f := r.sim.Snapshot()
	r.observe(f)
	if cfg.Record {
		result.Frames = append(result.Frames, f)
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		r.sim.Tick()
		f = r.sim.Snapshot()

		result.TicksTaken++
		result.Contacts += len(f.Contacts)
		result.WallHits += f.WallHits

		r.observe(f)
		if cfg.Record && (i+1)%every == 0 {
			result.Frames = append(result.Frames, f)
		}
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) observe(f Frame) {
	for _, m := range r.metrics {
		m.Observe(f)
	}
	for _, obs := range r.observers {
		obs.OnTick(f)
	}
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	if cfg.RecordEvery < 0 {
		return fmt.Errorf("record interval must not be negative, got %d", cfg.RecordEvery)
	}
	return nil
}

// RunWithCallback ticks until the callback returns false or ctx is done.
// The callback sees every frame after its tick.
func (r *Runner) RunWithCallback(ctx context.Context, callback func(Frame) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.sim.Tick()
		f := r.sim.Snapshot()
		r.observe(f)

		if !callback(f) {
			return nil
		}
	}
}
