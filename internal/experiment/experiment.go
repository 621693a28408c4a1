package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/fabiodan/bouncy-colors/internal/config"
	"github.com/fabiodan/bouncy-colors/internal/sim"
)

// Experiment ties a configuration to a seeded simulation and its runner.
type Experiment struct {
	cfg    *config.Config
	runner *sim.Runner
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup validates the configuration and places the bodies. It fails with
// the physics configuration or placement error unchanged.
func (e *Experiment) Setup(metrics []sim.Metric) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	s, err := sim.New(e.cfg.Params(), rand.New(rand.NewSource(e.cfg.Seed)))
	if err != nil {
		return err
	}

	e.runner = sim.NewRunner(s)
	for _, m := range metrics {
		e.runner.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context, record bool) (*sim.Result, error) {
	if e.runner == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	return e.runner.Run(ctx, sim.Config{
		Ticks:       e.cfg.Ticks,
		Record:      record,
		RecordEvery: 1,
	})
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Runner returns the underlying runner for adding observers.
func (e *Experiment) Runner() *sim.Runner {
	return e.runner
}
