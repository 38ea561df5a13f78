package testutil

import (
	"math"
	"math/rand"
)

// SineInt8 generates a deterministic 8-bit sine wave. amplitude is in
// sample units and is clamped to the int8 range.
func SineInt8(freqHz, sampleRate, amplitude float64, length int) []int8 {
	out := make([]int8, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = clampInt8(math.Round(amplitude * math.Sin(step*float64(i))))
	}
	return out
}

// NoiseInt8 generates uniform white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func NoiseInt8(seed int64, amplitude int, length int) []int8 {
	out := make([]int8, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = clampInt8(float64(rng.Intn(2*amplitude+1) - amplitude))
	}
	return out
}

// ConstantInt8 generates a run of identical samples.
func ConstantInt8(value int8, length int) []int8 {
	out := make([]int8, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// RandomBytes returns deterministic pseudo-random bytes, suitable as an
// arbitrary packed bitstream.
func RandomBytes(seed int64, length int) []byte {
	out := make([]byte, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = byte(rng.Intn(256))
	}
	return out
}

func clampInt8(v float64) int8 {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}
