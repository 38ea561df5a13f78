package roundtrip

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dfpwm/dsp/core"
	"github.com/cwbudde/algo-dfpwm/dsp/window"
)

const (
	defaultFFTSize = 4096
	defaultLowerHz = 20.0
	defaultUpperHz = 20000.0
)

var errEmptySignal = errors.New("roundtrip: empty signal")

// Config holds spectral comparison parameters.
type Config struct {
	SampleRate float64
	FFTSize    int // power of two; frames are non-overlapping
	LowerHz    float64
	UpperHz    float64     // clamped to Nyquist
	WindowType window.Type // applied in periodic form
}

// DefaultConfig returns a 4096-point analysis at the default processor
// sample rate over 20 Hz to 20 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate: core.DefaultProcessorConfig().SampleRate,
		FFTSize:    defaultFFTSize,
		LowerHz:    defaultLowerHz,
		UpperHz:    defaultUpperHz,
		WindowType: window.TypeHann,
	}
}

func (c Config) validate() error {
	if c.SampleRate <= 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("roundtrip: sample rate must be > 0 and finite: %f", c.SampleRate)
	}

	if c.FFTSize < 2 || c.FFTSize&(c.FFTSize-1) != 0 {
		return fmt.Errorf("roundtrip: FFT size must be a power of two >= 2: %d", c.FFTSize)
	}

	if c.LowerHz < 0 || c.UpperHz <= c.LowerHz {
		return fmt.Errorf("roundtrip: invalid band [%f, %f]", c.LowerHz, c.UpperHz)
	}

	if !c.WindowType.Valid() {
		return fmt.Errorf("roundtrip: unknown window type: %v", c.WindowType)
	}

	return nil
}

// SpectralSNR returns the ratio, in dB, of reference power to residual power
// (ref - test) summed over the configured band. Both signals are cut into
// windowed frames; a short final frame is zero padded.
func SpectralSNR(ref, test []int8, cfg Config) (float64, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}

	n := min(len(ref), len(test))
	if n == 0 {
		return 0, errEmptySignal
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return 0, err
	}

	refSig := make([]float64, n)
	resSig := make([]float64, n)

	for i := range n {
		refSig[i] = float64(ref[i])
		resSig[i] = float64(int(ref[i]) - int(test[i]))
	}

	var sigPower, noisePower float64

	for start := 0; start < n; start += cfg.FFTSize {
		end := min(start+cfg.FFTSize, n)

		p, err := a.bandPower(refSig[start:end])
		if err != nil {
			return 0, err
		}

		sigPower += p

		p, err = a.bandPower(resSig[start:end])
		if err != nil {
			return 0, err
		}

		noisePower += p
	}

	return powerRatioTodB(sigPower, noisePower), nil
}

// analyzer holds one FFT plan and its scratch buffers.
type analyzer struct {
	forward func(dst, src []complex128) error
	window  []float64
	frame   []float64
	in      []complex128
	out     []complex128
	re, im  []float64
	power   []float64
	lo, hi  int
}

func newAnalyzer(cfg Config) (*analyzer, error) {
	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: fft plan: %w", err)
	}

	bins := cfg.FFTSize/2 + 1
	binHz := cfg.SampleRate / float64(cfg.FFTSize)

	lo := core.ClampInt(int(math.Ceil(cfg.LowerHz/binHz)), 0, bins-1)
	hi := core.ClampInt(int(math.Floor(cfg.UpperHz/binHz)), lo, bins-1)

	return &analyzer{
		forward: plan.Forward,
		window:  window.Generate(cfg.WindowType, cfg.FFTSize, window.WithPeriodic()),
		frame:   make([]float64, cfg.FFTSize),
		in:      make([]complex128, cfg.FFTSize),
		out:     make([]complex128, cfg.FFTSize),
		re:      make([]float64, bins),
		im:      make([]float64, bins),
		power:   make([]float64, bins),
		lo:      lo,
		hi:      hi,
	}, nil
}

// bandPower windows samples (zero padded to the FFT size) and returns the
// summed bin power between lo and hi inclusive.
func (a *analyzer) bandPower(samples []float64) (float64, error) {
	clear(a.frame)
	copy(a.frame, samples)

	if err := window.ApplyCoefficientsInPlace(a.frame, a.window); err != nil {
		return 0, fmt.Errorf("roundtrip: %w", err)
	}

	for i, x := range a.frame {
		a.in[i] = complex(x, 0)
	}

	if err := a.forward(a.out, a.in); err != nil {
		return 0, fmt.Errorf("roundtrip: fft: %w", err)
	}

	for i := range a.re {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}

	vecmath.Power(a.power, a.re, a.im)

	var sum float64
	for _, p := range a.power[a.lo : a.hi+1] {
		sum += p
	}

	return sum, nil
}
