// Package session owns the sequence being visualised and the lifecycle of
// the sort running over it.
//
// A Session is the single owner of its sequence. At most one engine borrows
// it at a time: starting a sort requires the previous engine to have
// finished or been discarded, and Reset replaces the sequence wholesale.
package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/san-kum/sortwiz/internal/config"
	"github.com/san-kum/sortwiz/internal/layout"
	"github.com/san-kum/sortwiz/internal/metrics"
	"github.com/san-kum/sortwiz/internal/seq"
	"github.com/san-kum/sortwiz/internal/stepper"
)

type Options struct {
	Count         int
	Min, Max      int64
	Width, Height int
	Algorithm     stepper.Algorithm
	Direction     stepper.Direction
}

func DefaultOptions() Options {
	return FromConfig(config.DefaultConfig())
}

func FromConfig(cfg *config.Config) Options {
	return Options{
		Count:     cfg.Count,
		Min:       cfg.Min,
		Max:       cfg.Max,
		Width:     cfg.Canvas.Width,
		Height:    cfg.Canvas.Height,
		Algorithm: cfg.GetAlgorithm(),
		Direction: cfg.GetDirection(),
	}
}

// Frame is a read-only snapshot for the renderer.
type Frame struct {
	RunID     string
	Values    stepper.Sequence
	Bars      []layout.Bar
	Layout    layout.Layout
	Event     stepper.StepEvent
	State     stepper.State
	Algorithm stepper.Algorithm
	Direction stepper.Direction
	Steps     int
	Metrics   map[string]float64
}

type Session struct {
	opts    Options
	gen     *seq.Generator
	values  stepper.Sequence
	layout  *layout.Layout
	engine  *stepper.Engine
	state   stepper.State
	algo    stepper.Algorithm
	dir     stepper.Direction
	last    stepper.StepEvent
	runID   string
	metrics []stepper.Metric
	log     *slog.Logger
}

// New validates opts and generates the first sequence.
func New(opts Options, gen *seq.Generator) (*Session, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", stepper.ErrInvalidConfiguration, opts.Count)
	}
	if _, err := stepper.NewDriver(opts.Algorithm, opts.Direction); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = seq.NewUnseeded()
	}

	s := &Session{
		opts:  opts,
		gen:   gen,
		state: stepper.Idle,
		algo:  opts.Algorithm,
		dir:   opts.Direction,
		log:   slog.Default().With("component", "session"),
	}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	s.metrics = metrics.Default(s.dir)
	s.prime()
	return s, nil
}

func (s *Session) regenerate() error {
	values, err := s.gen.Generate(s.opts.Count, s.opts.Min, s.opts.Max)
	if err != nil {
		return err
	}
	if s.layout == nil {
		l, err := layout.New(s.opts.Width, s.opts.Height, values)
		if err != nil {
			return err
		}
		s.layout = l
	} else if err := s.layout.Set(values); err != nil {
		return err
	}
	s.values = values
	return nil
}

func (s *Session) busy() bool {
	return s.state == stepper.Running || s.state == stepper.Paused
}

// Start binds a fresh engine to the current sequence. It is legal from Idle
// and Completed; a finished run can be started again on the sorted values.
func (s *Session) Start() error {
	if s.busy() {
		s.log.Debug("start rejected", "state", s.state)
		return fmt.Errorf("start: %w", stepper.ErrBusy)
	}
	e, err := stepper.Start(s.values, s.dir, s.algo)
	if err != nil {
		return err
	}

	s.engine = e
	s.state = stepper.Running
	s.last = stepper.StepEvent{}
	s.runID = uuid.NewString()
	s.metrics = metrics.Default(s.dir)
	s.prime()

	s.log.Info("sort started", "run_id", s.runID, "algorithm", s.algo, "direction", s.dir, "count", len(s.values))
	return nil
}

func (s *Session) prime() {
	for _, m := range s.metrics {
		m.Reset()
		m.Observe(stepper.StepEvent{}, s.values)
	}
}

func (s *Session) Pause() error {
	if s.state != stepper.Running {
		return fmt.Errorf("pause: %w", stepper.ErrNotRunning)
	}
	s.state = stepper.Paused
	s.log.Debug("sort paused", "run_id", s.runID, "steps", s.Steps())
	return nil
}

func (s *Session) Resume() error {
	if s.state != stepper.Paused {
		return fmt.Errorf("resume: %w", stepper.ErrNotPaused)
	}
	s.state = stepper.Running
	s.log.Debug("sort resumed", "run_id", s.runID)
	return nil
}

// Toggle is the space bar: start when idle, otherwise flip between running and paused.
func (s *Session) Toggle() error {
	switch s.state {
	case stepper.Running:
		return s.Pause()
	case stepper.Paused:
		return s.Resume()
	default:
		return s.Start()
	}
}

// Advance performs one step of the running sort.
func (s *Session) Advance() (stepper.StepResult, error) {
	if s.state != stepper.Running {
		return stepper.StepResult{}, fmt.Errorf("advance: %w", stepper.ErrNotRunning)
	}

	r := s.engine.Advance()
	if r.Finished {
		s.finish()
		return r, nil
	}

	s.last = r.Event
	for _, m := range s.metrics {
		m.Observe(r.Event, s.values)
	}
	return r, nil
}

// Tick advances up to n steps when running and returns the events emitted.
// It is a no-op in every other state.
func (s *Session) Tick(n int) []stepper.StepEvent {
	var events []stepper.StepEvent
	for range n {
		if s.state != stepper.Running {
			break
		}
		r, err := s.Advance()
		if err != nil || r.Finished {
			break
		}
		events = append(events, r.Event)
	}
	return events
}

func (s *Session) finish() {
	steps := s.engine.Steps()
	s.engine = nil
	s.state = stepper.Completed
	s.last = stepper.StepEvent{}
	s.log.Info("sort finished", "run_id", s.runID, "algorithm", s.algo, "steps", steps,
		"sorted", s.values.IsSorted(s.dir))
}

// Cancel discards the engine and returns to Idle. The sequence keeps its
// partial order.
func (s *Session) Cancel() {
	if s.engine != nil {
		s.engine.Cancel()
		s.log.Info("sort cancelled", "run_id", s.runID, "steps", s.engine.Steps())
		s.engine = nil
	}
	s.state = stepper.Idle
	s.last = stepper.StepEvent{}
}

// Reset cancels any run and replaces the sequence with a fresh one.
func (s *Session) Reset() error {
	s.Cancel()
	if err := s.regenerate(); err != nil {
		return err
	}
	s.prime()
	s.log.Debug("sequence regenerated", "count", len(s.values), "min", s.layout.Min, "max", s.layout.Max)
	return nil
}

func (s *Session) SetDirection(d stepper.Direction) error {
	if s.busy() {
		return fmt.Errorf("set direction: %w", stepper.ErrBusy)
	}
	if _, err := stepper.NewDriver(s.algo, d); err != nil {
		return err
	}
	s.dir = d
	return nil
}

func (s *Session) SetAlgorithm(a stepper.Algorithm) error {
	if s.busy() {
		return fmt.Errorf("set algorithm: %w", stepper.ErrBusy)
	}
	if _, err := stepper.NewDriver(a, s.dir); err != nil {
		return err
	}
	s.algo = a
	return nil
}

func (s *Session) State() stepper.State         { return s.state }
func (s *Session) Algorithm() stepper.Algorithm { return s.algo }
func (s *Session) Direction() stepper.Direction { return s.dir }
func (s *Session) LastEvent() stepper.StepEvent { return s.last }
func (s *Session) RunID() string                { return s.runID }
func (s *Session) Values() stepper.Sequence     { return s.values.Clone() }
func (s *Session) Layout() layout.Layout        { return *s.layout }

// Steps is the number of steps taken by the current or most recent run.
func (s *Session) Steps() int {
	for _, m := range s.metrics {
		if m.Name() == "steps" {
			return int(m.Value())
		}
	}
	return 0
}

func (s *Session) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Session) Frame() Frame {
	values := s.values.Clone()
	return Frame{
		RunID:     s.runID,
		Values:    values,
		Bars:      s.layout.Bars(values),
		Layout:    *s.layout,
		Event:     s.last,
		State:     s.state,
		Algorithm: s.algo,
		Direction: s.dir,
		Steps:     s.Steps(),
		Metrics:   s.Metrics(),
	}
}
