package vmath

import "testing"

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed must not stick at zero")
	}
}

func TestFastRandIntn(t *testing.T) {
	r := NewFastRand(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Intn(2)
		if v < 0 || v >= 2 {
			t.Fatalf("Intn(2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both values, saw %v", seen)
	}

	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
}
