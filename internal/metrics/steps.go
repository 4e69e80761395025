package metrics

import "github.com/san-kum/sortwiz/internal/stepper"

// Steps counts emitted steps.
type Steps struct {
	name  string
	count int
}

func NewSteps() *Steps {
	return &Steps{name: "steps"}
}

func (s *Steps) Name() string { return s.name }

func (s *Steps) Observe(ev stepper.StepEvent, _ stepper.Sequence) {
	if ev.IsZero() {
		return
	}
	s.count++
}

func (s *Steps) Value() float64 { return float64(s.count) }

func (s *Steps) Reset() { s.count = 0 }

// SelfSwaps counts steps that swapped an element with itself.
type SelfSwaps struct {
	name  string
	count int
}

func NewSelfSwaps() *SelfSwaps {
	return &SelfSwaps{name: "self_swaps"}
}

func (s *SelfSwaps) Name() string { return s.name }

func (s *SelfSwaps) Observe(ev stepper.StepEvent, _ stepper.Sequence) {
	if ev.Op == stepper.OpSwap && len(ev.Highlights) == 1 {
		s.count++
	}
}

func (s *SelfSwaps) Value() float64 { return float64(s.count) }

func (s *SelfSwaps) Reset() { s.count = 0 }
