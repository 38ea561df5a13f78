package testutil

import (
	"math"
	"testing"
)

func TestMeanAbsDiff(t *testing.T) {
	d, err := MeanAbsDiff([]int8{1, 2, 3, 4}, []int8{1, 4, 3, 0})
	if err != nil {
		t.Fatalf("MeanAbsDiff error: %v", err)
	}

	if math.Abs(d-1.5) > 1e-15 {
		t.Fatalf("MeanAbsDiff = %v, want 1.5", d)
	}
}

func TestMeanAbsDiffLengthMismatch(t *testing.T) {
	_, err := MeanAbsDiff([]int8{1}, []int8{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMeanAbsDiffEmpty(t *testing.T) {
	d, err := MeanAbsDiff(nil, nil)
	if err != nil || d != 0 {
		t.Fatalf("MeanAbsDiff(nil, nil) = %v, %v; want 0, nil", d, err)
	}
}

func TestRequireSamplesNear(t *testing.T) {
	RequireSamplesNear(t, []int8{10, -10}, []int8{11, -12}, 2)
}

func TestRequireBytesEqual(t *testing.T) {
	RequireBytesEqual(t, []byte{1, 2, 3}, []byte{1, 2, 3})
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -1})
}
