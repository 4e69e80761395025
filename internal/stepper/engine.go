package stepper

import "iter"

// Engine binds one driver to a borrowed sequence for the length of a single
// sort. It is created fresh per run and discarded once finished or cancelled.
type Engine struct {
	seq    Sequence
	drv    Driver
	algo   Algorithm
	dir    Direction
	steps  int
	length int
	done   bool
}

// Start binds algo to s. The engine mutates s in place and never changes its length.
func Start(s Sequence, dir Direction, algo Algorithm) (*Engine, error) {
	drv, err := NewDriver(algo, dir)
	if err != nil {
		return nil, err
	}
	return &Engine{seq: s, drv: drv, algo: algo, dir: dir, length: len(s)}, nil
}

// Advance performs the next mutation, if any. Once it has reported Finished
// every further call returns Finished again without touching the sequence.
func (e *Engine) Advance() StepResult {
	if e.done {
		return StepResult{Finished: true}
	}
	ev, ok := e.drv.Next(e.seq)
	if !ok {
		e.release()
		return StepResult{Finished: true}
	}
	e.steps++
	ev.Step = e.steps
	return StepResult{Event: ev}
}

// Cancel drops the driver state. The sequence keeps whatever order it had.
func (e *Engine) Cancel() { e.release() }

func (e *Engine) release() {
	e.done = true
	e.drv = nil
	e.seq = nil
}

// All yields every remaining step until the sort finishes or the consumer stops.
func (e *Engine) All() iter.Seq[StepEvent] {
	return func(yield func(StepEvent) bool) {
		for {
			r := e.Advance()
			if r.Finished || !yield(r.Event) {
				return
			}
		}
	}
}

func (e *Engine) Steps() int           { return e.steps }
func (e *Engine) Done() bool           { return e.done }
func (e *Engine) Algorithm() Algorithm { return e.algo }
func (e *Engine) Direction() Direction { return e.dir }
func (e *Engine) Len() int             { return e.length }
