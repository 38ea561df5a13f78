package pcm

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewQuantizerValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"bad dither type", []Option{WithDitherType(DitherType(99))}},
		{"negative amplitude", []Option{WithDitherAmplitude(-1)}},
		{"NaN amplitude", []Option{WithDitherAmplitude(math.NaN())}},
		{"bad shaping", []Option{WithShaping(Shaping(42))}},
		{"Inf coefficient", []Option{WithShapingCoefficients([]float64{1, math.Inf(1)})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuantizer(tt.opts...)
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewQuantizerDefaults(t *testing.T) {
	quant, err := NewQuantizer(nil)
	if err != nil {
		t.Fatal(err)
	}

	if quant.DitherType() != DitherTriangular {
		t.Errorf("DitherType() = %v, want Triangular", quant.DitherType())
	}

	if quant.DitherAmplitude() != 1.0 {
		t.Errorf("DitherAmplitude() = %v, want 1.0", quant.DitherAmplitude())
	}

	if quant.ShapingOrder() != 0 {
		t.Errorf("ShapingOrder() = %d, want 0", quant.ShapingOrder())
	}
}

func TestQuantizerNoDitherMatchesRounding(t *testing.T) {
	quant, err := NewQuantizer(WithDitherType(DitherNone))
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	src := make([]float64, 1000)
	for i := range src {
		src[i] = rng.Float64()*2.2 - 1.1
	}

	got := make([]int8, len(src))
	quant.Process(got, src)

	want := make([]int8, len(src))
	FromFloat64(want, src)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestQuantizerDitherBounded(t *testing.T) {
	for _, dt := range []DitherType{DitherRectangular, DitherTriangular} {
		quant, err := NewQuantizer(
			WithDitherType(dt),
			WithRNG(rand.New(rand.NewPCG(42, 0))),
		)
		if err != nil {
			t.Fatal(err)
		}

		for i := range 2000 {
			x := math.Sin(float64(i) * 0.01) * 0.7
			got := int(quant.ProcessSample(x))
			exact := x * Scale

			if math.Abs(float64(got)-exact) > 1.5 {
				t.Fatalf("%v sample %d: got %d for %.3f", dt, i, got, exact)
			}
		}
	}
}

func TestQuantizerDitherPreservesMean(t *testing.T) {
	quant, err := NewQuantizer(WithRNG(rand.New(rand.NewPCG(7, 7))))
	if err != nil {
		t.Fatal(err)
	}

	const level = 10.3
	const n = 20000

	sum := 0
	for range n {
		sum += int(quant.ProcessSample(level / Scale))
	}

	if mean := float64(sum) / n; math.Abs(mean-level) > 0.1 {
		t.Fatalf("mean = %.3f, want %.1f ± 0.1", mean, level)
	}
}

func TestQuantizerDeterministicWithRNG(t *testing.T) {
	src := make([]float64, 256)
	for i := range src {
		src[i] = math.Sin(float64(i) * 0.1)
	}

	run := func() []int8 {
		quant, err := NewQuantizer(
			WithShaping(Shaping2MEC),
			WithRNG(rand.New(rand.NewPCG(3, 4))),
		)
		if err != nil {
			t.Fatal(err)
		}
		out := make([]int8, len(src))
		quant.Process(out, src)
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestQuantizerShapingFirstOrder(t *testing.T) {
	// With first-order error feedback and no dither the running sum of
	// errors stays bounded by one LSB, so the output tracks the input mean
	// exactly over any window.
	quant, err := NewQuantizer(WithDitherType(DitherNone), WithShaping(ShapingEFB))
	if err != nil {
		t.Fatal(err)
	}

	const level = 0.3 / Scale

	sum := 0
	for range 1000 {
		sum += int(quant.ProcessSample(level))
	}

	if sum < 299 || sum > 301 {
		t.Fatalf("sum = %d, want 300 ± 1", sum)
	}
}

func TestQuantizerClipDoesNotWindUp(t *testing.T) {
	quant, err := NewQuantizer(WithDitherType(DitherNone), WithShaping(ShapingEFB))
	if err != nil {
		t.Fatal(err)
	}

	for range 1000 {
		if got := quant.ProcessSample(4); got != 127 {
			t.Fatalf("clipped sample = %d, want 127", got)
		}
	}

	quant.ProcessSample(0)
	if got := quant.ProcessSample(0); got < -1 || got > 1 {
		t.Fatalf("after clipping, silence quantized to %d", got)
	}
}

func TestQuantizerReset(t *testing.T) {
	quant, err := NewQuantizer(WithDitherType(DitherNone), WithShaping(Shaping2SC))
	if err != nil {
		t.Fatal(err)
	}

	first := quant.ProcessSample(0.3 / Scale)
	quant.ProcessSample(0.7 / Scale)
	quant.Reset()

	if got := quant.ProcessSample(0.3 / Scale); got != first {
		t.Fatalf("after Reset got %d, want %d", got, first)
	}
}

func TestDitherTypeString(t *testing.T) {
	if DitherTriangular.String() != "Triangular" {
		t.Fatalf("String() = %q", DitherTriangular.String())
	}
	if DitherType(9).String() != "DitherType(9)" {
		t.Fatalf("String() = %q", DitherType(9).String())
	}
}

func TestParseDitherType(t *testing.T) {
	tests := []struct {
		name string
		want DitherType
	}{
		{"none", DitherNone},
		{"rectangular", DitherRectangular},
		{"triangular", DitherTriangular},
	}
	for _, tt := range tests {
		got, err := ParseDitherType(tt.name)
		if err != nil || got != tt.want {
			t.Fatalf("ParseDitherType(%q) = %v, %v", tt.name, got, err)
		}
	}

	if _, err := ParseDitherType("gaussian"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}
