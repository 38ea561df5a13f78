package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dfpwm/dsp/core"
)

// Generator creates deterministic test signals in [-1, 1] from a shared
// configuration. Convert the result to 8-bit with the pcm package before
// handing it to the codec.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the noise seed for later WhiteNoise calls.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine generates a sine wave starting at phase zero.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	step, err := g.phaseStep("sine", freqHz, samples)
	if err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Square generates a square wave with a 50% duty cycle, high for the first
// half period.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	step, err := g.phaseStep("square", freqHz, samples)
	if err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		phase := math.Mod(step*float64(i), 2*math.Pi)
		if phase < math.Pi {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// DC generates a constant signal. Long DC runs exercise the codec's idle
// behaviour.
func (g *Generator) DC(level float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("dc samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = level
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func (g *Generator) phaseStep(kind string, freqHz float64, samples int) (float64, error) {
	if samples <= 0 {
		return 0, fmt.Errorf("%s samples must be > 0: %d", kind, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return 0, fmt.Errorf("%s sample rate must be > 0: %f", kind, g.cfg.SampleRate)
	}
	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 {
		return 0, fmt.Errorf("%s frequency must be in [0, %g]: %f", kind, g.cfg.SampleRate/2, freqHz)
	}
	return 2 * math.Pi * freqHz / g.cfg.SampleRate, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
