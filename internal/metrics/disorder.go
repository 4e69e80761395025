package metrics

import "github.com/san-kum/sortwiz/internal/stepper"

// Disorder is the fraction of adjacent pairs still out of order.
type Disorder struct {
	name    string
	dir     stepper.Direction
	current float64
}

func NewDisorder(dir stepper.Direction) *Disorder {
	return &Disorder{name: "disorder", dir: dir}
}

func (d *Disorder) Name() string { return d.name }

func (d *Disorder) Observe(_ stepper.StepEvent, s stepper.Sequence) {
	if len(s) < 2 {
		d.current = 0
		return
	}
	bad := 0
	for i := 1; i < len(s); i++ {
		if d.dir.Precedes(s[i], s[i-1]) {
			bad++
		}
	}
	d.current = float64(bad) / float64(len(s)-1)
}

func (d *Disorder) Value() float64 { return d.current }

func (d *Disorder) Reset() { d.current = 0 }

// Inversions counts pairs i < j where s[j] must precede s[i].
type Inversions struct {
	name    string
	dir     stepper.Direction
	current int
	scratch stepper.Sequence
	buf     stepper.Sequence
}

func NewInversions(dir stepper.Direction) *Inversions {
	return &Inversions{name: "inversions", dir: dir}
}

func (v *Inversions) Name() string { return v.name }

func (v *Inversions) Observe(_ stepper.StepEvent, s stepper.Sequence) {
	v.current = v.Count(s)
}

// Count returns the inversion count of s in O(n log n) without modifying it.
func (v *Inversions) Count(s stepper.Sequence) int {
	if cap(v.scratch) < len(s) {
		v.scratch = make(stepper.Sequence, len(s))
		v.buf = make(stepper.Sequence, len(s))
	}
	a := v.scratch[:len(s)]
	copy(a, s)
	return v.mergeCount(a, v.buf[:len(s)])
}

func (v *Inversions) mergeCount(a, buf stepper.Sequence) int {
	n := len(a)
	if n < 2 {
		return 0
	}
	mid := n / 2
	count := v.mergeCount(a[:mid], buf[:mid]) + v.mergeCount(a[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if v.dir.Precedes(a[j], a[i]) {
			buf[k] = a[j]
			count += mid - i
			j++
		} else {
			buf[k] = a[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:n])
	copy(a, buf[:n])
	return count
}

func (v *Inversions) Value() float64 { return float64(v.current) }

func (v *Inversions) Reset() { v.current = 0 }
