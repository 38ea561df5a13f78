package testutil

import "testing"

func TestSineInt8(t *testing.T) {
	s := SineInt8(1000, 48000, 100, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %d, want 0", s[0])
	}
	// Quarter period of 1 kHz at 48 kHz is sample 12.
	if s[12] != 100 {
		t.Fatalf("s[12] = %d, want 100", s[12])
	}
	if s[36] != -100 {
		t.Fatalf("s[36] = %d, want -100", s[36])
	}
}

func TestSineInt8Clamps(t *testing.T) {
	s := SineInt8(1000, 48000, 300, 48)
	if s[12] != 127 || s[36] != -128 {
		t.Fatalf("peaks = %d, %d, want 127, -128", s[12], s[36])
	}
}

func TestNoiseInt8Reproducible(t *testing.T) {
	a := NoiseInt8(42, 20, 256)
	b := NoiseInt8(42, 20, 256)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -20 || a[i] > 20 {
			t.Fatalf("a[%d] = %d out of range", i, a[i])
		}
	}
}

func TestConstantInt8(t *testing.T) {
	s := ConstantInt8(-7, 5)
	for i, v := range s {
		if v != -7 {
			t.Fatalf("s[%d] = %d, want -7", i, v)
		}
	}
}

func TestRandomBytesReproducible(t *testing.T) {
	a := RandomBytes(3, 64)
	b := RandomBytes(3, 64)
	if string(a) != string(b) {
		t.Fatal("RandomBytes is not deterministic")
	}
}
