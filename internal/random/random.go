// Package random provides the randomness source threaded through combat,
// abilities and exploration. Nothing in the game reads global random state;
// every roll goes through a Source so tests can script the outcome.
package random

import "math/rand"

// Source produces uniformly distributed numbers.
type Source interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// Seeded wraps math/rand.Rand and remembers its seed so a run can be
// replayed.
type Seeded struct {
	seed int64
	src  *rand.Rand
}

// New creates a deterministic source from a seed.
func New(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a number in [0, 1).
func (r *Seeded) Float64() float64 {
	return r.src.Float64()
}

// Seed returns the seed the source was created with.
func (r *Seeded) Seed() int64 {
	return r.seed
}

// Chance reports whether an event with probability p happens on this roll.
// p <= 0 never happens and p >= 1 always happens.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns an index in [0, n). n must be positive.
func Pick(src Source, n int) int {
	idx := int(src.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Fixed is a Source that always returns the same value.
type Fixed float64

// Float64 returns f.
func (f Fixed) Float64() float64 { return float64(f) }

// Always and Never force Chance to succeed or fail for any p in (0, 1).
const (
	Always Fixed = 0
	Never  Fixed = 0.999999
)

// Sequence replays a scripted list of values in order. Once exhausted it
// keeps returning the last value.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a scripted source. With no values it behaves like Always.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Consumed returns how many scripted values have been read.
func (s *Sequence) Consumed() int {
	return s.next
}
