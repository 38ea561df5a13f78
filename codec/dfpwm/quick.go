package dfpwm

// QuickEncode encodes pcm as one complete stream with fresh encoder state.
// The result holds ceil(len(pcm)/8) bytes.
func QuickEncode(pcm []int8) []byte {
	e := Encoder{f: defaultState().toFilter()}
	return e.Encode(pcm, true)
}

// QuickDecode decodes packed with fresh decoder state and the default
// low-pass strength.
func QuickDecode(packed []byte) []int8 {
	d := Decoder{f: defaultState().toFilter(), lowpass: DefaultLowpassStrength}
	return d.Decode(packed)
}

// QuickDecodeStrength is QuickDecode with a caller-chosen low-pass strength.
func QuickDecodeStrength(packed []byte, strength int) ([]int8, error) {
	d, err := NewDecoder(WithLowpassStrength(strength))
	if err != nil {
		return nil, err
	}

	return d.Decode(packed), nil
}

// SamplesToBytes returns the two's-complement bytes of samples.
func SamplesToBytes(samples []int8) []byte {
	out := make([]byte, len(samples))
	for i, s := range samples {
		out[i] = byte(s)
	}

	return out
}

// BytesToSamples interprets buf as two's-complement signed samples.
func BytesToSamples(buf []byte) []int8 {
	out := make([]int8, len(buf))
	for i, b := range buf {
		out[i] = int8(b)
	}

	return out
}
