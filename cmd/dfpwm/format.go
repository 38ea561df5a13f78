package main

import (
	"encoding/binary"
	"fmt"

	"github.com/cwbudde/algo-dfpwm/codec/dfpwm"
	"github.com/cwbudde/algo-dfpwm/codec/dfpwm/stream"
	"github.com/cwbudde/algo-dfpwm/dsp/pcm"
)

// sampleFormat is the layout of raw PCM on disk or on a pipe.
type sampleFormat int

const (
	formatS8 sampleFormat = iota
	formatU8
	formatS16LE
)

var formatNames = map[string]sampleFormat{
	"s8":    formatS8,
	"u8":    formatU8,
	"s16le": formatS16LE,
}

func parseFormat(name string) (sampleFormat, error) {
	f, ok := formatNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown sample format %q (want s8, u8 or s16le)", name)
	}

	return f, nil
}

func (f sampleFormat) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}

	return fmt.Sprintf("sampleFormat(%d)", int(f))
}

// width returns the number of bytes per sample.
func (f sampleFormat) width() int {
	if f == formatS16LE {
		return 2
	}

	return 1
}

// toSigned converts raw input in its format to two's-complement 8-bit
// bytes. A split 16-bit sample is carried to the next call; one left over
// at the end of the stream is dropped.
type toSigned struct {
	format sampleFormat
	carry  []byte
}

func (c *toSigned) Process(buf []byte, final bool) []byte {
	switch c.format {
	case formatU8:
		out := make([]int8, len(buf))
		pcm.FromUnsigned8(out, buf)

		return dfpwm.SamplesToBytes(out)
	case formatS16LE:
		data := append(c.carry, buf...)

		n := len(data) / 2
		wide := make([]int16, n)

		for i := range wide {
			wide[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
		}

		c.carry = nil
		if !final && len(data)%2 != 0 {
			c.carry = []byte{data[len(data)-1]}
		}

		out := make([]int8, n)
		pcm.FromInt16(out, wide)

		return dfpwm.SamplesToBytes(out)
	default:
		return buf
	}
}

// fromSigned converts two's-complement 8-bit bytes to the output format.
type fromSigned struct {
	format sampleFormat
}

func (c fromSigned) Process(buf []byte, _ bool) []byte {
	samples := dfpwm.BytesToSamples(buf)

	switch c.format {
	case formatU8:
		out := make([]byte, len(samples))
		pcm.ToUnsigned8(out, samples)

		return out
	case formatS16LE:
		wide := make([]int16, len(samples))
		pcm.ToInt16(wide, samples)

		out := make([]byte, 2*len(wide))
		for i, v := range wide {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
		}

		return out
	default:
		return buf
	}
}

// chain runs processors in order. Every stage sees the final flag, so a
// flush propagates through the whole chain.
type chain []stream.Processor

func (c chain) Process(buf []byte, final bool) []byte {
	for _, p := range c {
		buf = p.Process(buf, final)
	}

	return buf
}
