package dfpwm

// Decoder reconstructs signed 8-bit PCM from packed DFPWM bits.
//
// Decoder keeps filter and low-pass state between calls, so successive
// chunks of one stream decode as if they were one buffer. It is not safe
// for concurrent use.
type Decoder struct {
	f        filter
	filtered int
	lowpass  int

	initial decoderConfig
}

// NewDecoder creates a Decoder. Without options the filter starts at
// charge 0, strength 0, last target [TargetLow], low-pass output 0 and
// low-pass strength [DefaultLowpassStrength].
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := decoderConfig{
		state:   defaultState(),
		lowpass: DefaultLowpassStrength,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Decoder{
		f:        cfg.toFilter(),
		filtered: cfg.filtered,
		lowpass:  cfg.lowpass,
		initial:  cfg,
	}, nil
}

// Decode returns 8*len(packed) samples using the configured low-pass
// strength.
func (d *Decoder) Decode(packed []byte) []int8 {
	out := make([]int8, len(packed)*samplesPerByte)
	d.decode(out, packed, d.lowpass)

	return out
}

// DecodeStrength decodes with a one-off low-pass strength. The configured
// strength is left unchanged.
func (d *Decoder) DecodeStrength(packed []byte, strength int) ([]int8, error) {
	if err := validateLowpass(strength); err != nil {
		return nil, err
	}

	out := make([]int8, len(packed)*samplesPerByte)
	d.decode(out, packed, strength)

	return out, nil
}

// DecodeInto decodes as many whole bytes of packed as fit into dst and
// returns the number of samples written (a multiple of eight).
func (d *Decoder) DecodeInto(dst []int8, packed []byte) int {
	n := min(len(packed), len(dst)/samplesPerByte)
	d.decode(dst, packed[:n], d.lowpass)

	return n * samplesPerByte
}

// Process is the chunk-stage form of Decode: packed bytes in, two's-complement
// sample bytes out. Decoding has no framing, so final is ignored.
func (d *Decoder) Process(buf []byte, _ bool) []byte {
	return SamplesToBytes(d.Decode(buf))
}

func (d *Decoder) decode(dst []int8, packed []byte, lowpass int) {
	i := 0

	for _, b := range packed {
		for range samplesPerByte {
			target := targetFor(b&1 != 0)
			b >>= 1

			prior, next := d.f.step(target)

			// Anti-jerk: halve the step when the polarity flips.
			pre := next
			if target != int(d.f.lastTarget) {
				pre = (next + prior + 1) >> 1
			}

			d.filtered += (lowpass*(pre-d.filtered) + 0x80) >> 8

			dst[i] = int8(d.filtered)
			i++

			d.f.lastTarget = int8(target)
		}
	}
}

// Getters.

// FilteredOutput returns the low-pass filter output of the last sample.
func (d *Decoder) FilteredOutput() int { return d.filtered }

// Charge returns the current filter charge.
func (d *Decoder) Charge() int { return d.f.charge }

// Strength returns the current adaptation strength.
func (d *Decoder) Strength() int { return d.f.strength }

// LastTarget returns the most recent quantized target.
func (d *Decoder) LastTarget() int8 { return d.f.lastTarget }

// LowpassStrength returns the configured low-pass coefficient.
func (d *Decoder) LowpassStrength() int { return d.lowpass }

// Setters.

// SetLowpassStrength changes the low-pass coefficient for later calls.
func (d *Decoder) SetLowpassStrength(strength int) error {
	if err := validateLowpass(strength); err != nil {
		return err
	}

	d.lowpass = strength

	return nil
}

// Reset restores the state the decoder was created with.
func (d *Decoder) Reset() {
	d.f = d.initial.toFilter()
	d.filtered = d.initial.filtered
	d.lowpass = d.initial.lowpass
}
