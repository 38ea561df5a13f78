package dfpwm

import "fmt"

const (
	minCharge = TargetLow
	maxCharge = TargetHigh
)

type state struct {
	charge     int
	strength   int
	lastTarget int8
}

type encoderConfig struct {
	state
}

type decoderConfig struct {
	state
	filtered int
	lowpass  int
}

func defaultState() state {
	return state{lastTarget: TargetLow}
}

// EncoderOption configures an [Encoder].
type EncoderOption func(*encoderConfig) error

// DecoderOption configures a [Decoder].
type DecoderOption func(*decoderConfig) error

// WithEncoderCharge sets the initial filter charge (default 0). Values
// outside [TargetLow, TargetHigh] are an error wrapping [ErrInvalidArgument].
func WithEncoderCharge(charge int) EncoderOption {
	return func(cfg *encoderConfig) error {
		return cfg.setCharge(charge)
	}
}

// WithEncoderStrength sets the initial adaptation strength (default 0).
// Values outside [0, StrengthSaturation] are an error wrapping
// [ErrInvalidArgument]. In-range values below [StrengthFloor] are raised to
// the floor on the first sample.
func WithEncoderStrength(strength int) EncoderOption {
	return func(cfg *encoderConfig) error {
		return cfg.setStrength(strength)
	}
}

// WithEncoderLastTarget sets the target the filter assumes it saw last
// (default [TargetLow]). Any value other than [TargetHigh] or [TargetLow] is
// an error wrapping [ErrInvalidArgument].
func WithEncoderLastTarget(target int8) EncoderOption {
	return func(cfg *encoderConfig) error {
		return cfg.setLastTarget(target)
	}
}

// WithDecoderCharge sets the initial filter charge (default 0). Values
// outside [TargetLow, TargetHigh] are an error wrapping [ErrInvalidArgument].
func WithDecoderCharge(charge int) DecoderOption {
	return func(cfg *decoderConfig) error {
		return cfg.setCharge(charge)
	}
}

// WithDecoderStrength sets the initial adaptation strength (default 0).
// Values outside [0, StrengthSaturation] are an error wrapping
// [ErrInvalidArgument].
func WithDecoderStrength(strength int) DecoderOption {
	return func(cfg *decoderConfig) error {
		return cfg.setStrength(strength)
	}
}

// WithDecoderLastTarget sets the target the filter assumes it saw last
// (default [TargetLow]). Any value other than [TargetHigh] or [TargetLow] is
// an error wrapping [ErrInvalidArgument].
func WithDecoderLastTarget(target int8) DecoderOption {
	return func(cfg *decoderConfig) error {
		return cfg.setLastTarget(target)
	}
}

// WithDecoderFilteredOutput seeds the low-pass filter output (default 0).
// Values outside [TargetLow, TargetHigh] are an error wrapping
// [ErrInvalidArgument].
func WithDecoderFilteredOutput(filtered int) DecoderOption {
	return func(cfg *decoderConfig) error {
		if filtered < minCharge || filtered > maxCharge {
			return fmt.Errorf("dfpwm: filtered output must be in [%d, %d]: %d: %w",
				minCharge, maxCharge, filtered, ErrInvalidArgument)
		}

		cfg.filtered = filtered

		return nil
	}
}

// WithLowpassStrength sets the low-pass coefficient in 1/256 units
// (default [DefaultLowpassStrength]). Higher values smooth less. Values
// outside [0, MaxLowpassStrength] are an error wrapping [ErrInvalidArgument].
func WithLowpassStrength(strength int) DecoderOption {
	return func(cfg *decoderConfig) error {
		if err := validateLowpass(strength); err != nil {
			return err
		}

		cfg.lowpass = strength

		return nil
	}
}

func (s *state) setCharge(charge int) error {
	if charge < minCharge || charge > maxCharge {
		return fmt.Errorf("dfpwm: charge must be in [%d, %d]: %d: %w",
			minCharge, maxCharge, charge, ErrInvalidArgument)
	}

	s.charge = charge

	return nil
}

func (s *state) setStrength(strength int) error {
	if strength < 0 || strength > StrengthSaturation {
		return fmt.Errorf("dfpwm: strength must be in [0, %d]: %d: %w",
			StrengthSaturation, strength, ErrInvalidArgument)
	}

	s.strength = strength

	return nil
}

func (s *state) setLastTarget(target int8) error {
	if target != TargetHigh && target != TargetLow {
		return fmt.Errorf("dfpwm: last target must be %d or %d: %d: %w",
			TargetHigh, TargetLow, target, ErrInvalidArgument)
	}

	s.lastTarget = target

	return nil
}

func (s state) toFilter() filter {
	return filter{
		charge:     s.charge,
		strength:   s.strength,
		lastTarget: s.lastTarget,
	}
}

func validateLowpass(strength int) error {
	if strength < 0 || strength > MaxLowpassStrength {
		return fmt.Errorf("dfpwm: low-pass strength must be in [0, %d]: %d: %w",
			MaxLowpassStrength, strength, ErrInvalidArgument)
	}

	return nil
}
