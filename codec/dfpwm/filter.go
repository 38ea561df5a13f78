package dfpwm

const (
	// Precision is the fixed-point precision of charge updates, in bits.
	Precision = 10

	// StrengthFloor is the smallest adaptation strength the filter allows.
	StrengthFloor = 1 << (Precision - 7)

	// StrengthSaturation is the strength the filter converges to while the
	// target keeps its polarity.
	StrengthSaturation = (1 << Precision) - 1

	// TargetHigh is the quantized target for a set bit.
	TargetHigh = 127

	// TargetLow is the quantized target for a cleared bit.
	TargetLow = -128

	// DefaultLowpassStrength is the decoder's default low-pass coefficient
	// in 1/256 units.
	DefaultLowpassStrength = 140

	// MaxLowpassStrength passes the anti-jerk output through unfiltered.
	MaxLowpassStrength = 256

	samplesPerByte = 8
)

// filter is the adaptive delta-modulation state shared by both directions.
type filter struct {
	charge     int
	strength   int
	lastTarget int8
}

// step moves the filter toward target and returns the charge before and
// after the move. lastTarget is read but not written; callers update it
// once they are done with the sample.
func (f *filter) step(target int) (prior, next int) {
	prior = f.charge

	next = prior + ((f.strength*(target-prior) + (1 << (Precision - 1))) >> Precision)
	if next == prior && next != target {
		if target == TargetHigh {
			next++
		} else {
			next--
		}
	}

	saturated := StrengthSaturation
	if target != int(f.lastTarget) {
		saturated = 0
	}

	switch {
	case f.strength < saturated:
		f.strength++
	case f.strength > saturated:
		f.strength--
	}

	if f.strength < StrengthFloor {
		f.strength = StrengthFloor
	}

	f.charge = next

	return prior, next
}

func targetFor(bit bool) int {
	if bit {
		return TargetHigh
	}

	return TargetLow
}
