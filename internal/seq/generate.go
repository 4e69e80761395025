package seq

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/sortwiz/internal/stepper"
)

type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewUnseeded seeds from the wall clock, like a fresh interactive session.
func NewUnseeded() *Generator {
	return New(time.Now().UnixNano())
}

// Generate draws count integers uniformly from [min, max]. A zero count
// yields an empty sequence.
func (g *Generator) Generate(count int, min, max int64) (stepper.Sequence, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d is negative", stepper.ErrInvalidConfiguration, count)
	}
	if min > max {
		return nil, fmt.Errorf("%w: min %d > max %d", stepper.ErrInvalidConfiguration, min, max)
	}

	span := uint64(max - min)
	s := make(stepper.Sequence, count)
	for i := range s {
		s[i] = min + int64(g.draw(span))
	}
	return s, nil
}

// draw returns a uniform value in [0, span].
func (g *Generator) draw(span uint64) uint64 {
	switch {
	case span == math.MaxUint64:
		return g.rng.Uint64()
	case span >= math.MaxInt64:
		return g.rng.Uint64() % (span + 1)
	}
	return uint64(g.rng.Int63n(int64(span) + 1))
}

// Generate is a convenience wrapper around a wall-clock seeded Generator.
func Generate(count int, min, max int64) (stepper.Sequence, error) {
	return NewUnseeded().Generate(count, min, max)
}
