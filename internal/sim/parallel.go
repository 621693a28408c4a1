package sim

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/fabiodan/bouncy-colors/internal/physics"
)

// Ensemble runs independent simulations of the same parameters with
// consecutive seeds.
type Ensemble struct {
	params    physics.Params
	numRuns   int
	seedStart int64
	metrics   func() []Metric
}

// NewEnsemble returns an ensemble of numRuns simulations. metrics, when not
// nil, is called once per run so runs never share metric state.
func NewEnsemble(p physics.Params, numRuns int, seedStart int64, metrics func() []Metric) *Ensemble {
	return &Ensemble{params: p, numRuns: numRuns, seedStart: seedStart, metrics: metrics}
}

// Seed returns the seed of run idx.
func (e *Ensemble) Seed(idx int) int64 { return e.seedStart + int64(idx) }

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			s, err := New(e.params, rand.New(rand.NewSource(e.Seed(idx))))
			if err != nil {
				return err
			}

			r := NewRunner(s)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					r.AddMetric(m)
				}
			}

			res, err := r.Run(ctx, cfg)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
