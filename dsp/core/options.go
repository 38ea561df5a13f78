package core

import (
	"math"
	"time"
)

const (
	// DefaultSampleRate is the rate DFPWM audio is conventionally played at.
	// The codec itself never reads it.
	DefaultSampleRate = 48000

	// DefaultBlockSize is the chunk size used by streaming adapters.
	DefaultBlockSize = 1024
)

// ProcessorConfig defines common processing settings.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline and streaming use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive and
// non-finite values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size. Non-positive values are
// ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Samples returns the number of samples covering d at the configured rate,
// rounded to the nearest sample.
func (cfg ProcessorConfig) Samples(d time.Duration) int {
	return int(math.Round(d.Seconds() * cfg.SampleRate))
}

// Duration returns the playback time of n samples.
func (cfg ProcessorConfig) Duration(n int) time.Duration {
	return time.Duration(float64(n) / cfg.SampleRate * float64(time.Second))
}

// BitRate returns the DFPWM bit rate in bits per second, one bit per sample.
func (cfg ProcessorConfig) BitRate() float64 {
	return cfg.SampleRate
}
