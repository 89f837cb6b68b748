package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 256; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs between identically seeded RNGs", i)
		}
	}
}

func TestRNGBoolRoughlyUniform(t *testing.T) {
	r := NewRNG(1)
	heads := 0
	const draws = 4096
	for i := 0; i < draws; i++ {
		if r.Bool() {
			heads++
		}
	}
	// Loose bound: ~12 standard deviations from the mean.
	if heads < draws/4 || heads > 3*draws/4 {
		t.Fatalf("%d heads out of %d draws", heads, draws)
	}
}

func TestIntNRange(t *testing.T) {
	r := NewRNG(5)
	for i := 0; i < 100; i++ {
		if v := r.IntN(7); v < 0 || v >= 7 {
			t.Fatalf("IntN(7) returned %d", v)
		}
	}
	if v := r.IntN(0); v != 0 {
		t.Fatalf("IntN(0) returned %d", v)
	}
}
