package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntRange(-50, 50), b.IntRange(-50, 50); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 500; i++ {
		v := r.IntRange(-3, 4)
		if v < -3 || v > 4 {
			t.Fatalf("IntRange(-3, 4) = %d", v)
		}
	}
	if got := r.IntRange(9, 2); got != 9 {
		t.Fatalf("IntRange with empty range = %d, want lo", got)
	}
}
