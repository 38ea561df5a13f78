package pcm

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultDitherType      = DitherTriangular
	defaultDitherAmplitude = 1.0
)

type config struct {
	ditherType      DitherType
	ditherAmplitude float64
	coeffs          []float64
	rng             *rand.Rand
}

func defaultConfig() config {
	return config{
		ditherType:      defaultDitherType,
		ditherAmplitude: defaultDitherAmplitude,
	}
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithDitherType sets the dither noise PDF (default [DitherTriangular]).
func WithDitherType(dt DitherType) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("pcm: invalid dither type: %d", dt)
		}

		cfg.ditherType = dt

		return nil
	}
}

// WithDitherAmplitude sets the dither amplitude in LSBs (default 1.0, must be >= 0).
func WithDitherAmplitude(amp float64) Option {
	return func(cfg *config) error {
		if amp < 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
			return fmt.Errorf("pcm: dither amplitude must be >= 0 and finite: %f", amp)
		}

		cfg.ditherAmplitude = amp

		return nil
	}
}

// WithShaping selects a predefined noise-shaping filter (default none).
func WithShaping(s Shaping) Option {
	return func(cfg *config) error {
		if !s.Valid() {
			return fmt.Errorf("pcm: invalid shaping: %d", s)
		}

		cfg.coeffs = s.Coefficients()

		return nil
	}
}

// WithShapingCoefficients sets custom error-feedback coefficients, most
// recent error first.
func WithShapingCoefficients(coeffs []float64) Option {
	return func(cfg *config) error {
		for i, c := range coeffs {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("pcm: shaping coefficient %d must be finite: %f", i, c)
			}
		}

		cfg.coeffs = append([]float64(nil), coeffs...)

		return nil
	}
}

// WithRNG sets a deterministic random number generator for reproducible output.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}
