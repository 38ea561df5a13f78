package stream

import (
	"errors"

	"github.com/cwbudde/algo-dfpwm/codec/dfpwm"
)

// ErrClosed is returned by Writer.Write after Close.
var ErrClosed = errors.New("stream: writer closed")

// Processor is a chunk-at-a-time transform. *dfpwm.Encoder and
// *dfpwm.Decoder implement it.
type Processor interface {
	Process(buf []byte, final bool) []byte
}

var (
	_ Processor = (*dfpwm.Encoder)(nil)
	_ Processor = (*dfpwm.Decoder)(nil)
)
