package stepper

import (
	"fmt"
	"slices"
	"strings"
)

type Sequence []int64

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// Bounds returns the smallest and largest value. Both are zero for an empty sequence.
func (s Sequence) Bounds() (lo, hi int64) {
	if len(s) == 0 {
		return 0, 0
	}
	return slices.Min(s), slices.Max(s)
}

// IsSorted reports whether no adjacent pair violates d.
func (s Sequence) IsSorted(d Direction) bool {
	for i := 1; i < len(s); i++ {
		if d.Precedes(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// SameValues reports whether s and other hold the same multiset of values.
func (s Sequence) SameValues(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	a, b := s.Clone(), other.Clone()
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func (s Sequence) swap(i, j int) { s[i], s[j] = s[j], s[i] }

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return "unknown"
	}
}

// Precedes reports whether a must strictly come before b. Equal values never
// precede each other, so drivers leave ties where they are.
func (d Direction) Precedes(a, b int64) bool {
	if d == Descending {
		return a > b
	}
	return a < b
}

func (d Direction) valid() bool { return d == Ascending || d == Descending }

func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "asc", "ascending", "a":
		return Ascending, nil
	case "desc", "descending", "d":
		return Descending, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

type Algorithm int

const (
	BubbleSort Algorithm = iota
	InsertionSort
	SelectionSort
	HeapSort
)

// Algorithms lists every selectable algorithm in menu order.
var Algorithms = []Algorithm{BubbleSort, InsertionSort, SelectionSort, HeapSort}

func (a Algorithm) String() string {
	switch a {
	case BubbleSort:
		return "Bubble Sort"
	case InsertionSort:
		return "Insertion Sort"
	case SelectionSort:
		return "Selection Sort"
	case HeapSort:
		return "Heap Sort"
	default:
		return "unknown"
	}
}

// Key is the short lowercase name used on the command line and in config files.
func (a Algorithm) Key() string {
	switch a {
	case BubbleSort:
		return "bubble"
	case InsertionSort:
		return "insertion"
	case SelectionSort:
		return "selection"
	case HeapSort:
		return "heap"
	default:
		return ""
	}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(strings.TrimSuffix(n, " sort"), "sort")
	for _, a := range Algorithms {
		if a.Key() == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Role says how the renderer should accent a highlighted bar.
type Role int

const (
	// Primary marks the element being moved or compared.
	Primary Role = iota + 1
	// Secondary marks its swap partner.
	Secondary
)

func (r Role) String() string {
	switch r {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "none"
	}
}

type Highlight struct {
	Index int
	Role  Role
}

type Op int

const (
	OpSwap Op = iota + 1
	OpShift
)

func (o Op) String() string {
	switch o {
	case OpSwap:
		return "swap"
	case OpShift:
		return "shift"
	default:
		return "none"
	}
}

// StepEvent describes one mutation of the sequence.
type StepEvent struct {
	Step       int
	Op         Op
	Highlights []Highlight
}

// newEvent builds the highlight pair for one mutation. When both roles land on
// the same index only the secondary accent is kept.
func newEvent(op Op, primary, secondary int) StepEvent {
	if primary == secondary {
		return StepEvent{Op: op, Highlights: []Highlight{{Index: secondary, Role: Secondary}}}
	}
	return StepEvent{Op: op, Highlights: []Highlight{
		{Index: primary, Role: Primary},
		{Index: secondary, Role: Secondary},
	}}
}

// RoleAt returns the accent for index i, if any.
func (e StepEvent) RoleAt(i int) (Role, bool) {
	for _, h := range e.Highlights {
		if h.Index == i {
			return h.Role, true
		}
	}
	return 0, false
}

// Index returns the index carrying role r, or -1.
func (e StepEvent) Index(r Role) int {
	for _, h := range e.Highlights {
		if h.Role == r {
			return h.Index
		}
	}
	return -1
}

func (e StepEvent) IsZero() bool { return e.Op == 0 && len(e.Highlights) == 0 }

type StepResult struct {
	Event    StepEvent
	Finished bool
}

// State is the lifecycle of a sort as seen by the controller.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Driver is one algorithm written as a resumable state machine. Next performs
// the next observable mutation on s and reports it; ok is false once the
// algorithm has nothing left to do.
type Driver interface {
	Next(s Sequence) (ev StepEvent, ok bool)
}

// NewDriver returns a fresh driver for a.
func NewDriver(a Algorithm, d Direction) (Driver, error) {
	if !d.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	switch a {
	case BubbleSort:
		return &bubble{dir: d}, nil
	case InsertionSort:
		return &insertion{dir: d, i: 1}, nil
	case SelectionSort:
		return &selection{dir: d}, nil
	case HeapSort:
		return &heap{dir: d, phase: heapInit}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
}

// Metric observes the sequence after each step. A zero StepEvent primes the
// metric with the starting order.
type Metric interface {
	Name() string
	Observe(ev StepEvent, s Sequence)
	Value() float64
	Reset()
}
