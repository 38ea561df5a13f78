package pcm

import (
	"math"
	"math/rand/v2"
)

// Quantizer reduces float audio in [-1, 1] to signed 8-bit samples with
// optional dither noise and error-feedback noise shaping. Output is always
// saturated to the int8 range.
type Quantizer struct {
	ditherType      DitherType
	ditherAmplitude float64
	shaper          *errorFeedback
	rng             *rand.Rand
}

// NewQuantizer creates a new Quantizer. The default configuration is
// triangular dither at 1 LSB with no noise shaping.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	quant := &Quantizer{
		ditherType:      cfg.ditherType,
		ditherAmplitude: cfg.ditherAmplitude,
		shaper:          newErrorFeedback(cfg.coeffs),
		rng:             cfg.rng,
	}

	if quant.rng == nil {
		quant.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return quant, nil
}

// ProcessSample quantizes one sample.
func (q *Quantizer) ProcessSample(input float64) int8 {
	shaped := q.shaper.shape(input * Scale)
	quantized := q.quantize(shaped)

	// Record the error before saturation so clipping cannot wind up the
	// feedback loop.
	q.shaper.record(float64(quantized) - shaped)

	return int8(max(math.MinInt8, min(math.MaxInt8, quantized)))
}

// Process quantizes min(len(dst), len(src)) samples and returns the count.
func (q *Quantizer) Process(dst []int8, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = q.ProcessSample(src[i])
	}
	return n
}

// Reset clears the noise-shaping history.
func (q *Quantizer) Reset() {
	q.shaper.reset()
}

func (q *Quantizer) quantize(input float64) int {
	if math.IsNaN(input) {
		return 0
	}

	switch q.ditherType {
	case DitherRectangular:
		input += q.ditherAmplitude * (q.rng.Float64()*2 - 1)
	case DitherTriangular:
		input += q.ditherAmplitude * (q.rng.Float64() - q.rng.Float64())
	}

	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(input))))
}

// DitherType returns the current dither noise type.
func (q *Quantizer) DitherType() DitherType { return q.ditherType }

// DitherAmplitude returns the current dither noise amplitude.
func (q *Quantizer) DitherAmplitude() float64 { return q.ditherAmplitude }

// ShapingOrder returns the number of noise-shaping coefficients in use.
func (q *Quantizer) ShapingOrder() int { return len(q.shaper.coeffs) }
