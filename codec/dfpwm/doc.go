// Package dfpwm implements the DFPWM1a audio codec.
//
// DFPWM (Dynamic Filter Pulse Width Modulation) stores one bit per sample.
// Each bit tells an adaptive filter whether the waveform should rise toward
// +127 or fall toward -128. The encoder picks the bit that moves the filter
// toward the input sample; the decoder replays the same filter and smooths
// its output with an anti-jerk midpoint at polarity flips and a single-pole
// low-pass filter.
//
// Samples are signed 8-bit, mono. Eight samples pack into one byte with the
// first sample in the least significant bit. There is no header and no
// sample-rate field; both ends agree on the rate out of band (48 kHz is the
// common choice).
//
// # Streaming
//
// [Encoder] and [Decoder] keep their filter state between calls, so a long
// stream can be processed in chunks of any size:
//
//	enc, _ := dfpwm.NewEncoder()
//	out := enc.Encode(chunk1, false) // may hold back up to 7 samples
//	out = append(out, enc.Encode(chunk2, true)...)
//
// A non-final Encode emits only complete bytes and carries the remaining
// samples into the next call. The final call flushes them as one short byte
// whose unused high bits are zero.
//
// [QuickEncode] and [QuickDecode] process a single buffer with fresh state.
//
// Neither type is safe for concurrent use. Adapters for io.Reader, io.Writer
// and channel pipelines live in the stream sub-package.
package dfpwm
