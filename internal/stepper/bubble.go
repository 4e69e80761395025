package stepper

// bubble compares adjacent pairs and emits one step per swap. Comparisons
// that leave the pair alone are not observable and produce no step.
type bubble struct {
	dir  Direction
	i, j int
}

func (b *bubble) Next(s Sequence) (StepEvent, bool) {
	n := len(s)
	for b.i < n-1 {
		for b.j < n-1-b.i {
			j := b.j
			b.j++
			if b.dir.Precedes(s[j+1], s[j]) {
				s.swap(j, j+1)
				return newEvent(OpSwap, j, j+1), true
			}
		}
		b.i++
		b.j = 0
	}
	return StepEvent{}, false
}
