package pcm

// Shaping identifies a predefined error-feedback noise-shaping filter.
type Shaping int

const (
	ShapingNone   Shaping = iota // No shaping
	ShapingEFB                   // Simple error feedback, 1st order
	Shaping2SC                   // Simple 2nd-order highpass
	Shaping2MEC                  // Modified E-weighted, 2nd order

	shapingCount
)

var shapingCoeffs = [shapingCount][]float64{
	ShapingNone: nil,
	ShapingEFB:  {1},
	Shaping2SC:  {1.0, -0.5},
	Shaping2MEC: {1.537, -0.8367},
}

// Valid reports whether s is a known shaping filter.
func (s Shaping) Valid() bool {
	return s >= 0 && s < shapingCount
}

// Coefficients returns a copy of the feedback coefficients, most recent
// error first. Returns nil for ShapingNone.
func (s Shaping) Coefficients() []float64 {
	if !s.Valid() || len(shapingCoeffs[s]) == 0 {
		return nil
	}
	return append([]float64(nil), shapingCoeffs[s]...)
}

// errorFeedback subtracts weighted past quantization errors from each
// input sample. The per-sample cycle is shape, quantize, record.
type errorFeedback struct {
	coeffs  []float64
	history []float64
	pos     int
}

func newErrorFeedback(coeffs []float64) *errorFeedback {
	c := append([]float64(nil), coeffs...)
	return &errorFeedback{
		coeffs:  c,
		history: make([]float64, len(c)),
	}
}

func (s *errorFeedback) shape(input float64) float64 {
	order := len(s.coeffs)
	if order == 0 {
		return input
	}
	for i, c := range s.coeffs {
		input -= c * s.history[(order+s.pos-i)%order]
	}
	s.pos = (s.pos + 1) % order
	return input
}

func (s *errorFeedback) record(quantizationError float64) {
	if len(s.coeffs) == 0 {
		return
	}
	s.history[s.pos] = quantizationError
}

func (s *errorFeedback) reset() {
	clear(s.history)
	s.pos = 0
}
