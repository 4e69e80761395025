package session

import (
	"testing"

	"github.com/san-kum/sortwiz/internal/seq"
	"github.com/san-kum/sortwiz/internal/stepper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := New(opts, seq.New(1))
	require.NoError(t, err)
	return s
}

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Count = 20
	return opts
}

func TestNew_Defaults(t *testing.T) {
	s := newTestSession(t, DefaultOptions())

	assert.Equal(t, stepper.Idle, s.State())
	assert.Equal(t, stepper.BubbleSort, s.Algorithm())
	assert.Equal(t, stepper.Ascending, s.Direction())
	assert.Len(t, s.Values(), 100)

	l := s.Layout()
	assert.Equal(t, 1200, l.Width)
	assert.Equal(t, 11, l.BlockWidth)
}

func TestNew_InvalidConfiguration(t *testing.T) {
	opts := DefaultOptions()
	opts.Count = 0
	_, err := New(opts, seq.New(1))
	assert.ErrorIs(t, err, stepper.ErrInvalidConfiguration)

	opts = DefaultOptions()
	opts.Min, opts.Max = 10, 0
	_, err = New(opts, seq.New(1))
	assert.ErrorIs(t, err, stepper.ErrInvalidConfiguration)

	opts = DefaultOptions()
	opts.Algorithm = stepper.Algorithm(42)
	_, err = New(opts, seq.New(1))
	assert.ErrorIs(t, err, stepper.ErrUnknownAlgorithm)
}

func TestLifecycle_RunToCompletion(t *testing.T) {
	for _, algo := range stepper.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			s := newTestSession(t, smallOptions())
			require.NoError(t, s.SetAlgorithm(algo))
			require.NoError(t, s.SetDirection(stepper.Descending))
			before := s.Values()

			require.NoError(t, s.Start())
			assert.Equal(t, stepper.Running, s.State())
			assert.NotEmpty(t, s.RunID())

			for s.State() == stepper.Running {
				_, err := s.Advance()
				require.NoError(t, err)
			}

			assert.Equal(t, stepper.Completed, s.State())
			assert.True(t, s.Values().IsSorted(stepper.Descending))
			assert.True(t, s.Values().SameValues(before))
			assert.True(t, s.LastEvent().IsZero())
			assert.Zero(t, s.Metrics()["inversions"])
		})
	}
}

func TestLifecycle_PauseResume(t *testing.T) {
	s := newTestSession(t, smallOptions())

	assert.ErrorIs(t, s.Pause(), stepper.ErrNotRunning)
	assert.ErrorIs(t, s.Resume(), stepper.ErrNotPaused)

	require.NoError(t, s.Toggle())
	assert.Equal(t, stepper.Running, s.State())

	require.NoError(t, s.Toggle())
	assert.Equal(t, stepper.Paused, s.State())

	frozen := s.Values()
	assert.Empty(t, s.Tick(10))
	assert.Equal(t, frozen, s.Values())

	_, err := s.Advance()
	assert.ErrorIs(t, err, stepper.ErrNotRunning)

	require.NoError(t, s.Toggle())
	assert.Equal(t, stepper.Running, s.State())
}

func TestLifecycle_BusyRejectsChanges(t *testing.T) {
	s := newTestSession(t, smallOptions())
	require.NoError(t, s.Start())

	assert.ErrorIs(t, s.Start(), stepper.ErrBusy)
	assert.ErrorIs(t, s.SetAlgorithm(stepper.HeapSort), stepper.ErrBusy)
	assert.ErrorIs(t, s.SetDirection(stepper.Descending), stepper.ErrBusy)

	require.NoError(t, s.Pause())
	assert.ErrorIs(t, s.SetAlgorithm(stepper.HeapSort), stepper.ErrBusy)
	assert.Equal(t, stepper.BubbleSort, s.Algorithm())
}

func TestTick_StepsPerFrame(t *testing.T) {
	opts := smallOptions()
	opts.Algorithm = stepper.SelectionSort
	s := newTestSession(t, opts)
	require.NoError(t, s.Start())

	events := s.Tick(3)
	assert.Len(t, events, 3)
	assert.Equal(t, 3, s.Steps())
	assert.Equal(t, events[2], s.LastEvent())

	rest := s.Tick(1000)
	assert.Len(t, rest, 17)
	assert.Equal(t, stepper.Completed, s.State())
	assert.Empty(t, s.Tick(5))
}

func TestCancel_KeepsPartialOrder(t *testing.T) {
	s := newTestSession(t, smallOptions())
	before := s.Values()
	require.NoError(t, s.Start())
	s.Tick(5)
	partial := s.Values()

	s.Cancel()
	assert.Equal(t, stepper.Idle, s.State())
	assert.Equal(t, partial, s.Values())
	assert.True(t, partial.SameValues(before))

	require.NoError(t, s.SetAlgorithm(stepper.InsertionSort))
	require.NoError(t, s.Start())
}

func TestReset_ReplacesSequence(t *testing.T) {
	s := newTestSession(t, smallOptions())
	require.NoError(t, s.Start())
	s.Tick(3)
	before := s.Values()

	require.NoError(t, s.Reset())
	assert.Equal(t, stepper.Idle, s.State())
	assert.Len(t, s.Values(), 20)
	assert.NotEqual(t, before, s.Values())

	l := s.Layout()
	lo, hi := s.Values().Bounds()
	assert.Equal(t, lo, l.Min)
	assert.Equal(t, hi, l.Max)
}

func TestRestartAfterCompletion(t *testing.T) {
	s := newTestSession(t, smallOptions())
	require.NoError(t, s.Start())
	s.Tick(10000)
	require.Equal(t, stepper.Completed, s.State())
	first := s.RunID()

	require.NoError(t, s.SetDirection(stepper.Descending))
	require.NoError(t, s.Start())
	assert.NotEqual(t, first, s.RunID())
	assert.Zero(t, s.Steps())
}

func TestFrame(t *testing.T) {
	s := newTestSession(t, smallOptions())
	require.NoError(t, s.Start())
	s.Tick(1)

	f := s.Frame()
	assert.Len(t, f.Bars, 20)
	assert.Equal(t, f.Values, s.Values())
	assert.Equal(t, stepper.Running, f.State)
	assert.Equal(t, 1, f.Steps)
	assert.False(t, f.Event.IsZero())
	assert.Contains(t, f.Metrics, "disorder")

	f.Values[0] = -1
	assert.NotEqual(t, int64(-1), s.Values()[0])
}
