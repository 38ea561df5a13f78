package roundtrip

import (
	"math"

	"github.com/cwbudde/algo-dfpwm/codec/dfpwm"
)

// Metrics holds sample-domain comparison results.
//
//nolint:revive
type Metrics struct {
	Samples       int
	MeanAbsError  float64
	RMSError      float64
	MaxAbsError   int
	SNR_dB        float64 // reference energy over residual energy
	Correlation   float64 // Pearson coefficient
	SignAgreement float64 // fraction of non-zero reference samples whose sign survives
}

// Result holds the outcome of [Run].
//
//nolint:revive
type Result struct {
	Metrics

	PackedBytes    int
	Decoded        []int8
	SpectralSNR_dB float64
}

// Compare computes error metrics of test against ref over
// min(len(ref), len(test)) samples.
func Compare(ref, test []int8) Metrics {
	n := min(len(ref), len(test))
	if n == 0 {
		return Metrics{SNR_dB: math.Inf(1), SignAgreement: 1}
	}

	var (
		sumAbs, sumSqErr, sumSqRef float64
		maxAbs                     int
		sumR, sumT                 float64
		sumRR, sumTT, sumRT        float64
		signed, agreed             int
	)

	for i := range n {
		r, t := int(ref[i]), int(test[i])

		d := r - t
		if d < 0 {
			d = -d
		}

		sumAbs += float64(d)
		sumSqErr += float64(d * d)
		sumSqRef += float64(r * r)
		maxAbs = max(maxAbs, d)

		rf, tf := float64(r), float64(t)
		sumR += rf
		sumT += tf
		sumRR += rf * rf
		sumTT += tf * tf
		sumRT += rf * tf

		if r != 0 {
			signed++

			if (r > 0) == (t > 0) && t != 0 {
				agreed++
			}
		}
	}

	nf := float64(n)

	m := Metrics{
		Samples:       n,
		MeanAbsError:  sumAbs / nf,
		RMSError:      math.Sqrt(sumSqErr / nf),
		MaxAbsError:   maxAbs,
		SNR_dB:        powerRatioTodB(sumSqRef, sumSqErr),
		SignAgreement: 1,
	}

	covRT := sumRT - sumR*sumT/nf
	varR := sumRR - sumR*sumR/nf
	varT := sumTT - sumT*sumT/nf

	if varR > 0 && varT > 0 {
		m.Correlation = covRT / math.Sqrt(varR*varT)
	}

	if signed > 0 {
		m.SignAgreement = float64(agreed) / float64(signed)
	}

	return m
}

// Run encodes pcm as one stream, decodes it with the given low-pass
// strength, and measures the reconstruction. The spectral SNR is computed
// once with cfg; it is NaN for empty input.
func Run(pcm []int8, lowpass int, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	packed := dfpwm.QuickEncode(pcm)

	decoded, err := dfpwm.QuickDecodeStrength(packed, lowpass)
	if err != nil {
		return Result{}, err
	}

	decoded = decoded[:len(pcm)]

	res := Result{
		Metrics:        Compare(pcm, decoded),
		PackedBytes:    len(packed),
		Decoded:        decoded,
		SpectralSNR_dB: math.NaN(),
	}

	if len(pcm) > 0 {
		snr, err := SpectralSNR(pcm, decoded, cfg)
		if err != nil {
			return Result{}, err
		}

		res.SpectralSNR_dB = snr
	}

	return res, nil
}

// powerRatioTodB returns 10*log10(signal/noise), +Inf for a silent residual.
func powerRatioTodB(signal, noise float64) float64 {
	if noise == 0 {
		return math.Inf(1)
	}

	if signal == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(signal/noise)
}
