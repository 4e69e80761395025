package stepper

type heapPhase int

const (
	heapInit heapPhase = iota
	heapBuild
	heapExtract
	heapDone
)

// siftTask is one pending heapify(size, root) call.
type siftTask struct {
	size, root int
}

// heap runs build-heap then extraction. The recursive sift-down is kept as an
// explicit stack of pending tasks so a swap deep inside it can suspend and the
// next call resumes in the child's subtree.
type heap struct {
	dir   Direction
	phase heapPhase
	i     int
	stack []siftTask
}

func (h *heap) Next(s Sequence) (StepEvent, bool) {
	n := len(s)
	for {
		if len(h.stack) > 0 {
			if ev, ok := h.sift(s); ok {
				return ev, true
			}
			continue
		}

		switch h.phase {
		case heapInit:
			h.i = n/2 - 1
			h.phase = heapBuild
		case heapBuild:
			if h.i >= 0 {
				h.stack = append(h.stack, siftTask{size: n, root: h.i})
				h.i--
				continue
			}
			h.i = n - 1
			h.phase = heapExtract
		case heapExtract:
			if h.i >= 1 {
				i := h.i
				h.i--
				s.swap(0, i)
				h.stack = append(h.stack, siftTask{size: i, root: 0})
				return newEvent(OpSwap, i, 0), true
			}
			h.phase = heapDone
		default:
			return StepEvent{}, false
		}
	}
}

// sift pops one task and compares its root with both children. A winning
// child is swapped up and its subtree is pushed as the continuation.
func (h *heap) sift(s Sequence) (StepEvent, bool) {
	t := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]

	top := t.root
	left, right := 2*t.root+1, 2*t.root+2
	if left < t.size && h.dir.Precedes(s[top], s[left]) {
		top = left
	}
	if right < t.size && h.dir.Precedes(s[top], s[right]) {
		top = right
	}
	if top == t.root {
		return StepEvent{}, false
	}

	s.swap(t.root, top)
	h.stack = append(h.stack, siftTask{size: t.size, root: top})
	return newEvent(OpSwap, t.root, top), true
}
