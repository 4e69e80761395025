package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/sortwiz/internal/metrics"
	"github.com/san-kum/sortwiz/internal/seq"
	"github.com/san-kum/sortwiz/internal/stepper"
)

type Config struct {
	Algorithm stepper.Algorithm
	Direction stepper.Direction
	Count     int
	Min, Max  int64
	Seed      int64
	// MaxSteps stops the run early when positive.
	MaxSteps int
	// KeepEvents records every event in the result.
	KeepEvents bool
}

// Result is the trace of one headless run.
type Result struct {
	Algorithm  stepper.Algorithm
	Direction  stepper.Direction
	Seed       int64
	Initial    stepper.Sequence
	Final      stepper.Sequence
	Events     []stepper.StepEvent
	Inversions []float64
	Steps      int
	Finished   bool
	Elapsed    time.Duration
	Metrics    map[string]float64
}

type Experiment struct {
	cfg     Config
	initial stepper.Sequence
	metrics []stepper.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup generates the starting sequence from the seed. It may be replaced
// with UseSequence to compare algorithms on identical input.
func (e *Experiment) Setup() error {
	if e.cfg.Count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", stepper.ErrInvalidConfiguration, e.cfg.Count)
	}
	s, err := seq.New(e.cfg.Seed).Generate(e.cfg.Count, e.cfg.Min, e.cfg.Max)
	if err != nil {
		return err
	}
	e.initial = s
	e.metrics = metrics.Default(e.cfg.Direction)
	return nil
}

func (e *Experiment) UseSequence(s stepper.Sequence) {
	e.initial = s.Clone()
	e.metrics = metrics.Default(e.cfg.Direction)
}

func (e *Experiment) Initial() stepper.Sequence { return e.initial.Clone() }

// Run drives the engine until it finishes, MaxSteps is reached or ctx is done.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.initial == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	work := e.initial.Clone()
	eng, err := stepper.Start(work, e.cfg.Direction, e.cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	var inversions stepper.Metric
	for _, m := range e.metrics {
		m.Reset()
		m.Observe(stepper.StepEvent{}, work)
		if m.Name() == "inversions" {
			inversions = m
		}
	}

	result := &Result{
		Algorithm: e.cfg.Algorithm,
		Direction: e.cfg.Direction,
		Seed:      e.cfg.Seed,
		Initial:   e.initial.Clone(),
		Metrics:   make(map[string]float64),
	}
	if inversions != nil {
		result.Inversions = append(result.Inversions, inversions.Value())
	}

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			eng.Cancel()
			result.Steps = eng.Steps()
			result.Final = work
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		if e.cfg.MaxSteps > 0 && eng.Steps() >= e.cfg.MaxSteps {
			eng.Cancel()
			result.Finished = e.finishesWithin(e.cfg.MaxSteps)
			break
		}

		r := eng.Advance()
		if r.Finished {
			result.Finished = true
			break
		}

		for _, m := range e.metrics {
			m.Observe(r.Event, work)
		}
		if e.cfg.KeepEvents {
			result.Events = append(result.Events, r.Event)
		}
		if inversions != nil {
			result.Inversions = append(result.Inversions, inversions.Value())
		}
	}

	result.Elapsed = time.Since(start)
	result.Steps = eng.Steps()
	result.Final = work
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// finishesWithin reports whether the driver has nothing left to do after
// steps steps. It replays the run on a copy of the input so the capped
// result keeps its sequence untouched.
func (e *Experiment) finishesWithin(steps int) bool {
	eng, err := stepper.Start(e.initial.Clone(), e.cfg.Direction, e.cfg.Algorithm)
	if err != nil {
		return false
	}
	defer eng.Cancel()
	for range steps {
		if eng.Advance().Finished {
			return true
		}
	}
	return eng.Advance().Finished
}
