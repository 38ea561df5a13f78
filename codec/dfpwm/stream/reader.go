package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-dfpwm/dsp/core"
)

// Reader pulls blocks from an underlying reader, passes them through a
// Processor and serves the result.
type Reader struct {
	r   io.Reader
	p   Processor
	in  []byte
	out []byte
	err error
}

// NewReader returns a Reader that reads blocks of the default processor
// block size from r.
func NewReader(r io.Reader, p Processor) *Reader {
	return NewReaderSize(r, p, core.DefaultProcessorConfig().BlockSize)
}

// NewReaderSize is NewReader with an explicit block size. Sizes below one
// fall back to the default.
func NewReaderSize(r io.Reader, p Processor, blockSize int) *Reader {
	if blockSize < 1 {
		blockSize = core.DefaultProcessorConfig().BlockSize
	}

	return &Reader{r: r, p: p, in: make([]byte, blockSize)}
}

// Read fills buf with processed bytes. At the end of the underlying stream
// the processor receives one final call before io.EOF is returned.
func (r *Reader) Read(buf []byte) (int, error) {
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		r.fill()
	}

	n := copy(buf, r.out)
	r.out = r.out[n:]

	return n, nil
}

func (r *Reader) fill() {
	n, err := r.r.Read(r.in)

	switch {
	case errors.Is(err, io.EOF):
		r.out = r.p.Process(r.in[:n], true)
		r.err = io.EOF
	case err != nil:
		r.out = r.p.Process(r.in[:n], false)
		r.err = fmt.Errorf("stream: read: %w", err)
	default:
		r.out = r.p.Process(r.in[:n], false)
	}
}
