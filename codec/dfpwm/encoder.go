package dfpwm

// Encoder converts signed 8-bit PCM into packed DFPWM bits.
//
// Encoder keeps filter state and up to seven unconsumed samples between
// calls. It is not safe for concurrent use.
type Encoder struct {
	f       filter
	initial state

	pending [samplesPerByte - 1]int8
	npend   int
}

// NewEncoder creates an Encoder. Without options the filter starts at
// charge 0, strength 0 and last target [TargetLow].
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := encoderConfig{state: defaultState()}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Encoder{
		f:       cfg.toFilter(),
		initial: cfg.state,
	}, nil
}

// Encode appends samples to the stream and returns the packed bytes that
// are complete.
//
// When final is false, a trailing group of fewer than eight samples is held
// back and prepended to the next call. When final is true, that group is
// encoded into one more byte, right-aligned with zero padding, and the
// encoder is left with nothing pending.
//
// The result holds floor(n/8) bytes, or ceil(n/8) when final, where n counts
// the held-back samples plus len(samples).
func (e *Encoder) Encode(samples []int8, final bool) []byte {
	total := e.npend + len(samples)

	outLen := total / samplesPerByte
	if final && total%samplesPerByte != 0 {
		outLen++
	}

	out := make([]byte, 0, outLen)

	var group [samplesPerByte]int8

	// Complete the carried-over group first.
	if e.npend > 0 {
		n := copy(group[:], e.pending[:e.npend])
		take := copy(group[n:], samples)
		samples = samples[take:]
		n += take

		if n < samplesPerByte && !final {
			e.npend = copy(e.pending[:], group[:n])
			return out
		}

		e.npend = 0
		out = append(out, e.encodeGroup(group[:n]))
	}

	for len(samples) >= samplesPerByte {
		out = append(out, e.encodeGroup(samples[:samplesPerByte]))
		samples = samples[samplesPerByte:]
	}

	if len(samples) > 0 {
		if final {
			out = append(out, e.encodeGroup(samples))
		} else {
			e.npend = copy(e.pending[:], samples)
		}
	}

	return out
}

// EncodeBytes is Encode for a buffer holding two's-complement samples.
func (e *Encoder) EncodeBytes(buf []byte, final bool) []byte {
	return e.Encode(BytesToSamples(buf), final)
}

// Process is the chunk-stage form of Encode: raw sample bytes in, packed
// bytes out. It satisfies the stream package's Processor interface.
func (e *Encoder) Process(buf []byte, final bool) []byte {
	return e.EncodeBytes(buf, final)
}

// encodeGroup encodes one to eight samples into a byte. Short groups are
// shifted down so the first sample lands in bit 0.
func (e *Encoder) encodeGroup(samples []int8) byte {
	var packed byte

	for _, s := range samples {
		v := int(s)
		bit := v > e.f.charge || (v == e.f.charge && v == TargetHigh)
		target := targetFor(bit)

		packed >>= 1
		if bit {
			packed |= 0x80
		}

		e.f.step(target)
		e.f.lastTarget = int8(target)
	}

	return packed >> (samplesPerByte - len(samples))
}

// Getters.

// Pending returns the number of samples held back for the next call.
func (e *Encoder) Pending() int { return e.npend }

// Charge returns the current filter charge.
func (e *Encoder) Charge() int { return e.f.charge }

// Strength returns the current adaptation strength.
func (e *Encoder) Strength() int { return e.f.strength }

// LastTarget returns the most recent quantized target.
func (e *Encoder) LastTarget() int8 { return e.f.lastTarget }

// Reset restores the state the encoder was created with and drops any
// pending samples.
func (e *Encoder) Reset() {
	e.f = e.initial.toFilter()
	e.npend = 0
}
