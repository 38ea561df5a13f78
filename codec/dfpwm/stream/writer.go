package stream

import (
	"fmt"
	"io"
)

// Writer passes written bytes through a Processor and writes the result to
// an underlying writer. Close sends the final flush.
type Writer struct {
	w      io.Writer
	p      Processor
	closed bool
}

// NewWriter returns a Writer that processes into w.
func NewWriter(w io.Writer, p Processor) *Writer {
	return &Writer{w: w, p: p}
}

// Write processes buf as a non-final chunk. It reports len(buf) on success
// even when the processor holds bytes back for the next call.
func (w *Writer) Write(buf []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}

	if err := w.emit(w.p.Process(buf, false)); err != nil {
		return 0, err
	}

	return len(buf), nil
}

// Close flushes the processor with a final call. It does not close the
// underlying writer. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	return w.emit(w.p.Process(nil, true))
}

func (w *Writer) emit(out []byte) error {
	if len(out) == 0 {
		return nil
	}

	if _, err := w.w.Write(out); err != nil {
		return fmt.Errorf("stream: write: %w", err)
	}

	return nil
}
