package core_test

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-dfpwm/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=256
}

func ExampleProcessorConfig_Samples() {
	cfg := core.DefaultProcessorConfig()

	n := cfg.Samples(time.Second)
	fmt.Println(n, "samples,", n/8, "packed bytes")

	// Output:
	// 48000 samples, 6000 packed bytes
}
