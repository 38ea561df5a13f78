package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireBytesEqual fails t if got and want differ in length or content.
func RequireBytesEqual(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

// RequireSamplesNear fails t if got and want differ in length or if any
// element pair differs by more than tol.
func RequireSamplesNear(t *testing.T, got, want []int8, tol int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := int(got[i]) - int(want[i])
		if diff < -tol || diff > tol {
			t.Fatalf("index %d: got %d, want %d (diff %d > tol %d)", i, got[i], want[i], diff, tol)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MeanAbsDiff returns the mean absolute difference between two sample
// slices. Returns an error if the slices differ in length.
func MeanAbsDiff(a, b []int8) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	sum := 0
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return float64(sum) / float64(len(a)), nil
}
