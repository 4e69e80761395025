package metrics

import "github.com/san-kum/sortwiz/internal/stepper"

// Default returns the metrics attached to every run.
func Default(dir stepper.Direction) []stepper.Metric {
	return []stepper.Metric{
		NewSteps(),
		NewSelfSwaps(),
		NewDisorder(dir),
		NewInversions(dir),
	}
}
