// Package stepper turns comparison sorts into resumable step producers.
//
// Each algorithm is written as an explicit state machine that performs one
// observable mutation of the shared [Sequence] per call and reports it as a
// [StepEvent]:
//
//   - [Sequence]: the slice being sorted, mutated in place
//   - [Direction]: ascending or descending order, with the shared tie-break
//   - [Driver]: one algorithm's state machine
//   - [Engine]: binds a driver to a sequence and tracks terminal state
//
// # Example
//
//	e, _ := stepper.Start(values, stepper.Ascending, stepper.HeapSort)
//	for r := e.Advance(); !r.Finished; r = e.Advance() {
//		render(values, r.Event)
//	}
//
// # Thread Safety
//
// Engines are NOT thread-safe and never block. The caller decides when to
// call [Engine.Advance] again; cancelling between calls leaves the sequence
// as a valid permutation of its starting values.
package stepper
