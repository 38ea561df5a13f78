package core

import (
	"math"
	"testing"
	"time"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithBlockSize(2048))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), WithSampleRate(math.Inf(1)), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestDefaults(t *testing.T) {
	def := DefaultProcessorConfig()
	if def.SampleRate != 48000 || def.BlockSize != 1024 {
		t.Fatalf("defaults = %#v", def)
	}
	if def.BitRate() != 48000 {
		t.Fatalf("BitRate() = %v, want 48000", def.BitRate())
	}
}

func TestSamplesAndDuration(t *testing.T) {
	cfg := DefaultProcessorConfig()

	if n := cfg.Samples(250 * time.Millisecond); n != 12000 {
		t.Fatalf("Samples(250ms) = %d, want 12000", n)
	}

	if d := cfg.Duration(96000); d != 2*time.Second {
		t.Fatalf("Duration(96000) = %v, want 2s", d)
	}
}
