package stepper

import "errors"

// Domain errors for sequence and engine operations.
var (
	// ErrInvalidConfiguration indicates a count, range or canvas that cannot
	// produce a drawable sequence.
	ErrInvalidConfiguration = errors.New("stepper: invalid configuration")

	// ErrUnknownAlgorithm indicates an algorithm selection outside the four drivers.
	ErrUnknownAlgorithm = errors.New("stepper: unknown algorithm")

	// ErrUnknownDirection indicates a direction other than ascending or descending.
	ErrUnknownDirection = errors.New("stepper: unknown direction")

	// ErrBusy indicates a command that is only legal while no sort is running.
	ErrBusy = errors.New("stepper: sort in progress")

	// ErrNotRunning indicates a command that needs a running sort.
	ErrNotRunning = errors.New("stepper: no sort running")

	// ErrNotPaused indicates a resume without a preceding pause.
	ErrNotPaused = errors.New("stepper: sort not paused")
)
