package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampInt limits value to the inclusive range [lo, hi].
func ClampInt(value, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	return max(lo, min(hi, value))
}

// RoundInt8 rounds x half away from zero and saturates it to the int8
// range. NaN maps to 0.
func RoundInt8(x float64) int8 {
	if math.IsNaN(x) {
		return 0
	}

	return int8(Clamp(math.Round(x), math.MinInt8, math.MaxInt8))
}
