package experiment

import (
	"fmt"
	"sort"

	"github.com/fabiodan/bouncy-colors/internal/metrics"
	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/sim"
)

// defaultOrder is the order metrics are reported in.
var defaultOrder = []string{
	"kinetic_energy",
	"energy_drift",
	"contacts",
	"wall_hits",
	"containment",
	"overlap",
}

type Registry struct {
	metrics map[string]func(physics.Arena) sim.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics: make(map[string]func(physics.Arena) sim.Metric),
	}

	r.metrics["kinetic_energy"] = func(physics.Arena) sim.Metric { return metrics.NewEnergy() }
	r.metrics["energy_drift"] = func(physics.Arena) sim.Metric { return metrics.NewEnergyDrift() }
	r.metrics["contacts"] = func(physics.Arena) sim.Metric { return metrics.NewContacts() }
	r.metrics["wall_hits"] = func(physics.Arena) sim.Metric { return metrics.NewWallHits() }
	r.metrics["containment"] = func(a physics.Arena) sim.Metric { return metrics.NewContainment(a) }
	r.metrics["overlap"] = func(physics.Arena) sim.Metric { return metrics.NewOverlap() }

	return r
}

func (r *Registry) GetMetric(name string, arena physics.Arena) (sim.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(arena), nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns a fresh instance of every built-in metric.
func (r *Registry) DefaultMetrics(arena physics.Arena) []sim.Metric {
	out := make([]sim.Metric, 0, len(defaultOrder))
	for _, name := range defaultOrder {
		out = append(out, r.metrics[name](arena))
	}
	return out
}

// MetricNames returns the built-in metric names in report order.
func MetricNames() []string {
	return append([]string(nil), defaultOrder...)
}
