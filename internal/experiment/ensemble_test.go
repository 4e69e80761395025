package experiment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/sortwiz/internal/stepper"
)

func TestEnsemble_Run(t *testing.T) {
	base := Config{
		Algorithm: stepper.SelectionSort,
		Direction: stepper.Ascending,
		Count:     20,
		Min:       0,
		Max:       50,
		Seed:      10,
	}

	results, err := NewEnsemble(base, 3).Run(context.Background())
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Seed != base.Seed+int64(i) {
			t.Errorf("result %d: seed %d", i, r.Seed)
		}
		if r.Steps != base.Count {
			t.Errorf("result %d: selection sort took %d steps, want %d", i, r.Steps, base.Count)
		}
		if !r.Final.IsSorted(stepper.Ascending) {
			t.Errorf("result %d not sorted", i)
		}
	}

	single := New(Config{Count: 20, Min: 0, Max: 50, Seed: 11})
	if err := single.Setup(); err != nil {
		t.Fatal(err)
	}
	want := single.Initial()
	for i, v := range results[1].Initial {
		if want[i] != v {
			t.Fatalf("trial 1 does not reproduce seed 11 at index %d", i)
		}
	}
}

func TestEnsemble_InvalidConfig(t *testing.T) {
	_, err := NewEnsemble(Config{Count: 0}, 2).Run(context.Background())
	if !errors.Is(err, stepper.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{Algorithm: stepper.BubbleSort, Initial: make(stepper.Sequence, 5), Steps: 4, Elapsed: time.Millisecond,
			Metrics: map[string]float64{"self_swaps": 0}},
		{Algorithm: stepper.BubbleSort, Initial: make(stepper.Sequence, 5), Steps: 8, Elapsed: time.Millisecond,
			Metrics: map[string]float64{"self_swaps": 2}},
	}

	s := Summarize(results)
	if s.Algorithm != stepper.BubbleSort || s.Count != 5 || s.Runs != 2 {
		t.Errorf("unexpected header %+v", s)
	}
	if s.MinSteps != 4 || s.MaxSteps != 8 || s.MeanSteps != 6 {
		t.Errorf("unexpected steps min=%d max=%d mean=%v", s.MinSteps, s.MaxSteps, s.MeanSteps)
	}
	if s.MeanSelfSwaps != 1 {
		t.Errorf("expected mean self swaps 1, got %v", s.MeanSelfSwaps)
	}
	if s.Elapsed != 2*time.Millisecond {
		t.Errorf("expected total elapsed 2ms, got %v", s.Elapsed)
	}

	if (Summarize(nil) != Summary{}) {
		t.Error("expected zero summary for no results")
	}
}

func TestSweep_Run(t *testing.T) {
	sweep := NewSweep([]stepper.Algorithm{stepper.BubbleSort, stepper.HeapSort}, []int{8, 128}, 2)
	base := Config{Direction: stepper.Ascending, Min: 0, Max: 1000, Seed: 1}

	summaries, err := sweep.Run(context.Background(), base)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(summaries))
	}

	order := []struct {
		algo  stepper.Algorithm
		count int
	}{
		{stepper.BubbleSort, 8},
		{stepper.BubbleSort, 128},
		{stepper.HeapSort, 8},
		{stepper.HeapSort, 128},
	}
	for i, want := range order {
		if summaries[i].Algorithm != want.algo || summaries[i].Count != want.count {
			t.Errorf("cell %d: got %v/%d, want %v/%d", i, summaries[i].Algorithm, summaries[i].Count, want.algo, want.count)
		}
		if summaries[i].Runs != 2 {
			t.Errorf("cell %d: expected 2 runs, got %d", i, summaries[i].Runs)
		}
	}

	if got := Fastest(summaries)[128]; got != stepper.HeapSort {
		t.Errorf("expected heap sort to need fewer steps on 128 elements, got %v", got)
	}
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSweep(stepper.Algorithms, []int{10}, 1).Run(ctx, Config{Max: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
