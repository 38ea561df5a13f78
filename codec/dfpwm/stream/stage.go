package stream

import (
	"context"

	"github.com/cwbudde/algo-dfpwm/codec/dfpwm"
)

// Stage runs p in its own goroutine. Each chunk received from in is
// processed and, if the result is non-empty, sent on the returned channel.
// When in is closed the processor gets its final call and the output
// channel is closed. Cancelling ctx stops the stage without a flush.
//
// Chunks are never dropped: a full output channel blocks the stage, since a
// lost chunk would desynchronise the codec state. p must not be used by
// anyone else while the stage runs.
func Stage(ctx context.Context, p Processor, in <-chan []byte, buffer int) <-chan []byte {
	out := make(chan []byte, max(buffer, 0))

	go func() {
		defer close(out)

		for {
			var (
				chunk []byte
				ok    bool
			)

			select {
			case <-ctx.Done():
				return
			case chunk, ok = <-in:
			}

			final := !ok

			if res := p.Process(chunk, final); len(res) > 0 {
				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}

			if final {
				return
			}
		}
	}()

	return out
}

// EncodeStage is Stage for an encoder with an unbuffered output channel.
func EncodeStage(ctx context.Context, enc *dfpwm.Encoder, in <-chan []byte) <-chan []byte {
	return Stage(ctx, enc, in, 0)
}

// DecodeStage is Stage for a decoder with an unbuffered output channel.
func DecodeStage(ctx context.Context, dec *dfpwm.Decoder, in <-chan []byte) <-chan []byte {
	return Stage(ctx, dec, in, 0)
}
