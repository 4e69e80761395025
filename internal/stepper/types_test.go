package stepper

import (
	"errors"
	"testing"
)

func TestDirection_Precedes(t *testing.T) {
	tests := []struct {
		dir  Direction
		a, b int64
		want bool
	}{
		{Ascending, 1, 2, true},
		{Ascending, 2, 1, false},
		{Ascending, 3, 3, false},
		{Descending, 2, 1, true},
		{Descending, 1, 2, false},
		{Descending, 3, 3, false},
	}

	for _, tt := range tests {
		if got := tt.dir.Precedes(tt.a, tt.b); got != tt.want {
			t.Errorf("%s.Precedes(%d, %d) = %v, want %v", tt.dir, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
		err  bool
	}{
		{"bubble", BubbleSort, false},
		{"Heap Sort", HeapSort, false},
		{"insertionsort", InsertionSort, false},
		{" selection ", SelectionSort, false},
		{"quick", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.err {
				if !errors.Is(err, ErrUnknownAlgorithm) {
					t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("desc"); err != nil || d != Descending {
		t.Errorf("expected descending, got %v %v", d, err)
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestSequence_Helpers(t *testing.T) {
	s := Sequence{4, 1, 3}
	lo, hi := s.Bounds()
	if lo != 1 || hi != 4 {
		t.Errorf("Bounds() = %d, %d", lo, hi)
	}
	if lo, hi := (Sequence{}).Bounds(); lo != 0 || hi != 0 {
		t.Errorf("empty Bounds() = %d, %d", lo, hi)
	}
	if !s.SameValues(Sequence{3, 4, 1}) {
		t.Error("expected same values")
	}
	if s.SameValues(Sequence{3, 4, 4}) {
		t.Error("expected different values")
	}
	if s.IsSorted(Ascending) || !(Sequence{4, 3, 3, 1}).IsSorted(Descending) {
		t.Error("IsSorted mismatch")
	}
}

func TestNewEvent_SelfSwap(t *testing.T) {
	ev := newEvent(OpSwap, 2, 2)
	if len(ev.Highlights) != 1 || ev.Highlights[0].Role != Secondary {
		t.Errorf("expected single secondary highlight, got %+v", ev.Highlights)
	}
	if _, ok := ev.RoleAt(3); ok {
		t.Error("unexpected role at 3")
	}
	if ev.Index(Primary) != -1 {
		t.Error("expected no primary index")
	}
}
