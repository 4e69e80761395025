package stepper

// insertion carries s[i] leftwards one slot per step. pos is where the held
// value currently sits; moving is false between outer iterations.
type insertion struct {
	dir     Direction
	i, pos  int
	current int64
	moving  bool
}

func (in *insertion) Next(s Sequence) (StepEvent, bool) {
	for in.i < len(s) {
		if !in.moving {
			in.pos = in.i
			in.current = s[in.i]
			in.moving = true
		}
		if in.pos > 0 && in.dir.Precedes(in.current, s[in.pos-1]) {
			s[in.pos] = s[in.pos-1]
			in.pos--
			s[in.pos] = in.current
			return newEvent(OpShift, in.pos+1, in.pos), true
		}
		in.moving = false
		in.i++
	}
	return StepEvent{}, false
}
