package random

import "testing"

func TestSeeded_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("roll %d: got %v and %v from same seed", i, x, y)
		}
	}
}

func TestSeeded_Range(t *testing.T) {
	r := New(99)

	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() out of range [0,1): got %v", v)
		}
	}
}

func TestSeeded_KeepsSeed(t *testing.T) {
	if got := New(7).Seed(); got != 7 {
		t.Errorf("Seed() = %d, want 7", got)
	}
}

func TestChance(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		p    float64
		want bool
	}{
		{"always succeeds at 20%", Always, 0.2, true},
		{"never fails at 50%", Never, 0.5, false},
		{"boundary is exclusive", Fixed(0.2), 0.2, false},
		{"just below boundary", Fixed(0.19), 0.2, true},
		{"zero probability", Always, 0, false},
		{"certain probability", Never, 1, true},
	}

	for _, tt := range tests {
		if got := Chance(tt.src, tt.p); got != tt.want {
			t.Errorf("%s: Chance(%v, %v) = %v, want %v", tt.name, tt.src.Float64(), tt.p, got, tt.want)
		}
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		value float64
		n     int
		want  int
	}{
		{0, 4, 0},
		{0.24, 4, 0},
		{0.25, 4, 1},
		{0.999999, 4, 3},
		{0.5, 1, 0},
	}

	for _, tt := range tests {
		if got := Pick(Fixed(tt.value), tt.n); got != tt.want {
			t.Errorf("Pick(%v, %d) = %d, want %d", tt.value, tt.n, got, tt.want)
		}
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(0.1, 0.9)

	if got := s.Float64(); got != 0.1 {
		t.Errorf("first value = %v, want 0.1", got)
	}
	if got := s.Float64(); got != 0.9 {
		t.Errorf("second value = %v, want 0.9", got)
	}
	// Exhausted: repeats the last value.
	if got := s.Float64(); got != 0.9 {
		t.Errorf("exhausted value = %v, want 0.9", got)
	}
	if s.Consumed() != 2 {
		t.Errorf("Consumed() = %d, want 2", s.Consumed())
	}

	if got := NewSequence().Float64(); got != 0 {
		t.Errorf("empty sequence = %v, want 0", got)
	}
}
