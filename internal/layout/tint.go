package layout

import "github.com/san-kum/sortwiz/internal/stepper"

// Tint is the colour slot of a bar: one of three gradient shades or an accent.
type Tint int

const (
	Gradient0 Tint = iota
	Gradient1
	Gradient2
	Accent1 // primary highlight
	Accent2 // secondary highlight
)

// TintOf picks the colour slot for bar i under the most recent step.
func TintOf(i int, ev stepper.StepEvent) Tint {
	if role, ok := ev.RoleAt(i); ok {
		if role == stepper.Primary {
			return Accent1
		}
		return Accent2
	}
	return Tint(i % 3)
}
