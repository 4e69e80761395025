package stepper

// selection scans for the extremal element of the unsorted suffix and swaps
// it into place. Every outer iteration emits exactly one step, including the
// self-swap when s[i] is already extremal.
type selection struct {
	dir Direction
	i   int
}

func (sel *selection) Next(s Sequence) (StepEvent, bool) {
	n := len(s)
	if n < 2 || sel.i >= n {
		return StepEvent{}, false
	}
	i := sel.i
	sel.i++

	best := i
	for j := i + 1; j < n; j++ {
		if sel.dir.Precedes(s[j], s[best]) {
			best = j
		}
	}
	s.swap(i, best)
	return newEvent(OpSwap, i, best), true
}
