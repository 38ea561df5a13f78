package pcm

import "github.com/cwbudde/algo-dfpwm/dsp/core"

// Scale maps a full-scale float sample to 8-bit units.
const Scale = 128

// FromFloat64 converts float samples in [-1, 1] to int8, rounding half away
// from zero and saturating. It converts min(len(dst), len(src)) samples and
// returns that count.
func FromFloat64(dst []int8, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = core.RoundInt8(src[i] * Scale)
	}
	return n
}

// ToFloat64 converts int8 samples to floats in [-1, 1).
func ToFloat64(dst []float64, src []int8) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i]) / Scale
	}
	return n
}

// FromInt16 keeps the high byte of each 16-bit sample.
func FromInt16(dst []int8, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int8(src[i] >> 8)
	}
	return n
}

// ToInt16 widens int8 samples to 16 bits.
func ToInt16(dst []int16, src []int8) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int16(src[i]) << 8
	}
	return n
}

// FromUnsigned8 converts offset-binary 8-bit samples (silence at 0x80, as
// in 8-bit WAV data) to signed.
func FromUnsigned8(dst []int8, src []byte) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int8(src[i] ^ 0x80)
	}
	return n
}

// ToUnsigned8 converts signed samples to offset-binary.
func ToUnsigned8(dst []byte, src []int8) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = byte(src[i]) ^ 0x80
	}
	return n
}
