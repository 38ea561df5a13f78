package dfpwm

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dfpwm/internal/testutil"
)

func TestQuickEncodeMatchesEncoder(t *testing.T) {
	in := testutil.NoiseInt8(3, 127, 77)

	enc, _ := NewEncoder()
	testutil.RequireBytesEqual(t, QuickEncode(in), enc.Encode(in, true))
}

func TestQuickDecodeMatchesDecoder(t *testing.T) {
	in := testutil.RandomBytes(3, 77)

	dec, _ := NewDecoder()
	testutil.RequireSamplesNear(t, QuickDecode(in), dec.Decode(in), 0)
}

func TestQuickDecodeStrengthValidation(t *testing.T) {
	if _, err := QuickDecodeStrength([]byte{1}, 257); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestQuickEmpty(t *testing.T) {
	if out := QuickEncode(nil); len(out) != 0 {
		t.Fatalf("QuickEncode(nil) = %v, want empty", out)
	}

	if out := QuickDecode(nil); len(out) != 0 {
		t.Fatalf("QuickDecode(nil) = %v, want empty", out)
	}
}

func TestSampleByteViews(t *testing.T) {
	samples := []int8{0, 1, -1, 127, -128}
	bytes := SamplesToBytes(samples)

	testutil.RequireBytesEqual(t, bytes, []byte{0x00, 0x01, 0xff, 0x7f, 0x80})
	testutil.RequireSamplesNear(t, BytesToSamples(bytes), samples, 0)
}

func TestRoundTripSine(t *testing.T) {
	pcm := testutil.SineInt8(440, 48000, 100, 4800)
	out := QuickDecode(QuickEncode(pcm))

	if len(out) != len(pcm) {
		t.Fatalf("len = %d, want %d", len(out), len(pcm))
	}

	mae, err := testutil.MeanAbsDiff(pcm, out)
	if err != nil {
		t.Fatal(err)
	}

	if mae > 12 {
		t.Fatalf("mean abs error = %.2f, want <= 12", mae)
	}

	if r := correlation(pcm, out); r < 0.95 {
		t.Fatalf("correlation = %.4f, want >= 0.95", r)
	}

	for i, v := range pcm {
		if v > 40 && out[i] <= 0 || v < -40 && out[i] >= 0 {
			t.Fatalf("sample %d: decoded %d has the wrong sign for %d", i, out[i], v)
		}
	}
}

func TestRoundTripIdle(t *testing.T) {
	for _, level := range []int8{-30, -10, 0, 10, 25} {
		out := QuickDecode(QuickEncode(testutil.ConstantInt8(level, 2048)))

		for i := 1024; i < len(out); i++ {
			if d := int(out[i]) - int(level); d < -1 || d > 1 {
				t.Fatalf("level %d, sample %d: decoded %d", level, i, out[i])
			}
		}
	}
}

func correlation(a, b []int8) float64 {
	n := float64(len(a))

	var sa, sb float64
	for i := range a {
		sa += float64(a[i])
		sb += float64(b[i])
	}

	ma, mb := sa/n, sb/n

	var cov, va, vb float64
	for i := range a {
		da, db := float64(a[i])-ma, float64(b[i])-mb
		cov += da * db
		va += da * da
		vb += db * db
	}

	return cov / math.Sqrt(va*vb)
}
