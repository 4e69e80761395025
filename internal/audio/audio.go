// Package audio plays a short tone for each sorting step, pitched by the
// value of the bar that moved.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/san-kum/sortwiz/internal/stepper"
)

const (
	SampleRate = beep.SampleRate(44100)

	MinFrequency = 120.0
	MaxFrequency = 1200.0
)

type Sonifier struct {
	mu          sync.Mutex
	min, max    int64
	toneLen     time.Duration
	volume      float64
	initialized bool
}

func NewSonifier(min, max int64, toneLen time.Duration) *Sonifier {
	return &Sonifier{min: min, max: max, toneLen: toneLen, volume: -1.5}
}

// Initialize opens the speaker. It is safe to call more than once.
func (s *Sonifier) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *Sonifier) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// SetRange updates the value range after the sequence is regenerated.
func (s *Sonifier) SetRange(min, max int64) {
	s.mu.Lock()
	s.min, s.max = min, max
	s.mu.Unlock()
}

// Frequency maps v linearly from [min, max] onto [MinFrequency, MaxFrequency].
func (s *Sonifier) Frequency(v int64) float64 {
	s.mu.Lock()
	lo, hi := s.min, s.max
	s.mu.Unlock()

	if hi <= lo {
		return (MinFrequency + MaxFrequency) / 2
	}
	if v <= lo {
		return MinFrequency
	}
	t := float64(uint64(v-lo)) / float64(uint64(hi-lo))
	t = min(max(t, 0), 1)
	return MinFrequency + t*(MaxFrequency-MinFrequency)
}

// Tone is a finite sine burst for value v.
func (s *Sonifier) Tone(v int64) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, s.Frequency(v))
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(SampleRate.N(s.toneLen), sine),
		Base:     2,
		Volume:   s.volume,
	}, nil
}

// Play sounds the bar that moved in ev. It does nothing before Initialize.
func (s *Sonifier) Play(ev stepper.StepEvent, values stepper.Sequence) {
	s.mu.Lock()
	ready := s.initialized
	s.mu.Unlock()
	if !ready {
		return
	}

	i := ev.Index(stepper.Primary)
	if i < 0 {
		i = ev.Index(stepper.Secondary)
	}
	if i < 0 || i >= len(values) {
		return
	}

	tone, err := s.Tone(values[i])
	if err != nil {
		return
	}
	speaker.Play(tone)
}
