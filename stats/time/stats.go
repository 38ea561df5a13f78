package time

import "math"

// Stats holds time-domain statistics of a signal. Levels are relative to
// full scale 1.0, so the dB fields read as dBFS.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Max           float64
	Min           float64
	Peak          float64 // max(|max|, |min|)
	Peak_dB       float64
	CrestFactor   float64 // peak / RMS (linear)
	Variance      float64
	ZeroCrossings int
	Clipped       int // samples at or beyond full scale
}

// int8Scale maps a signed 8-bit sample to full scale.
const int8Scale = 128

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	var s StreamingStats
	s.Update(signal)

	return s.Result()
}

// CalculateInt8 computes statistics of signed 8-bit samples scaled by 1/128.
// Both -128 and 127 count as clipped.
func CalculateInt8(samples []int8) Stats {
	var s StreamingStats
	s.UpdateInt8(samples)

	return s.Result()
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}

	return peak
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// StreamingStats accumulates statistics across blocks. Splitting a signal
// into blocks gives the same result as one [Calculate] call.
type StreamingStats struct {
	n             int
	mean          float64
	m2            float64
	sumSq         float64
	maxVal        float64
	minVal        float64
	zeroCrossings int
	clipped       int
	last          float64
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of float samples.
func (s *StreamingStats) Update(samples []float64) {
	for _, x := range samples {
		s.add(x, math.Abs(x) >= 1)
	}
}

// UpdateInt8 adds a block of signed 8-bit samples.
func (s *StreamingStats) UpdateInt8(samples []int8) {
	for _, v := range samples {
		s.add(float64(v)/int8Scale, v == math.MinInt8 || v == math.MaxInt8)
	}
}

func (s *StreamingStats) add(x float64, clipped bool) {
	s.n++

	// Welford update.
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (x - s.mean)

	s.sumSq += x * x

	if s.n == 1 {
		s.maxVal, s.minVal = x, x
	} else {
		s.maxVal = math.Max(s.maxVal, x)
		s.minVal = math.Min(s.minVal, x)

		if s.last*x < 0 {
			s.zeroCrossings++
		}
	}

	if clipped {
		s.clipped++
	}

	s.last = x
}

// Result computes the statistics of everything added so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return emptyStats()
	}

	nf := float64(s.n)
	rms := math.Sqrt(s.sumSq / nf)
	peak := math.Max(math.Abs(s.maxVal), math.Abs(s.minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        s.n,
		DC:            s.mean,
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Max:           s.maxVal,
		Min:           s.minVal,
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		CrestFactor:   crest,
		Variance:      s.m2 / nf,
		ZeroCrossings: s.zeroCrossings,
		Clipped:       s.clipped,
	}
}

// Reset clears all accumulated data.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
