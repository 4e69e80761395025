package experiment

import (
	"context"
	"math"
	"runtime"
	"time"

	"github.com/san-kum/sortwiz/internal/stepper"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs one configuration over consecutive seeds in parallel.
type Ensemble struct {
	base    Config
	numRuns int
	workers int
}

func NewEnsemble(base Config, numRuns int) *Ensemble {
	return &Ensemble{base: base, numRuns: numRuns, workers: runtime.GOMAXPROCS(0)}
}

// Run executes every trial and returns the results in seed order. Trial i
// uses seed base.Seed+i.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range e.numRuns {
		g.Go(func() error {
			cfg := e.base
			cfg.Seed = e.base.Seed + int64(i)
			cfg.KeepEvents = false

			exp := New(cfg)
			if err := exp.Setup(); err != nil {
				return err
			}
			r, err := exp.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates the results of an ensemble.
type Summary struct {
	Algorithm     stepper.Algorithm
	Count         int
	Runs          int
	MinSteps      int
	MaxSteps      int
	MeanSteps     float64
	MeanSelfSwaps float64
	Elapsed       time.Duration
}

func Summarize(results []*Result) Summary {
	var s Summary
	if len(results) == 0 {
		return s
	}
	s.Algorithm = results[0].Algorithm
	s.Count = len(results[0].Initial)
	s.Runs = len(results)
	s.MinSteps = math.MaxInt

	var steps, selfSwaps float64
	for _, r := range results {
		s.MinSteps = min(s.MinSteps, r.Steps)
		s.MaxSteps = max(s.MaxSteps, r.Steps)
		steps += float64(r.Steps)
		selfSwaps += r.Metrics["self_swaps"]
		s.Elapsed += r.Elapsed
	}
	s.MeanSteps = steps / float64(s.Runs)
	s.MeanSelfSwaps = selfSwaps / float64(s.Runs)
	return s
}

// Sweep walks the grid of algorithms and element counts, running an
// ensemble of trials in every cell.
type Sweep struct {
	algorithms []stepper.Algorithm
	counts     []int
	trials     int
}

func NewSweep(algorithms []stepper.Algorithm, counts []int, trials int) *Sweep {
	return &Sweep{algorithms: algorithms, counts: counts, trials: max(trials, 1)}
}

// Run returns one summary per cell, counts varying fastest. Every cell uses
// the same seeds, so algorithms are compared on identical input.
func (s *Sweep) Run(ctx context.Context, base Config) ([]Summary, error) {
	var out []Summary
	for _, a := range s.algorithms {
		for _, n := range s.counts {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			cfg := base
			cfg.Algorithm = a
			cfg.Count = n

			results, err := NewEnsemble(cfg, s.trials).Run(ctx)
			if err != nil {
				return out, err
			}
			out = append(out, Summarize(results))
		}
	}
	return out, nil
}

// Fastest picks, for every count, the algorithm with the fewest mean steps.
// Ties go to the algorithm listed first.
func Fastest(summaries []Summary) map[int]stepper.Algorithm {
	best := make(map[int]Summary)
	for _, s := range summaries {
		if b, ok := best[s.Count]; !ok || s.MeanSteps < b.MeanSteps {
			best[s.Count] = s
		}
	}
	out := make(map[int]stepper.Algorithm, len(best))
	for n, s := range best {
		out[n] = s.Algorithm
	}
	return out
}
