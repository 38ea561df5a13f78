// Package stream adapts the dfpwm state machines to chunked I/O.
//
// The codec core exposes a single Process(buf, final) operation. This package
// wires that operation into three stream shapes without touching the core:
//
//   - [Writer]: an io.WriteCloser that encodes (or decodes) everything written
//     to it and flushes on Close.
//   - [Reader]: an io.Reader that pulls blocks from an underlying reader and
//     returns processed bytes.
//   - [Stage]: a goroutine that maps an input channel of chunks to an output
//     channel, flushing when the input closes.
//
// Every inbound chunk produces zero or one outbound chunk. End of stream
// triggers exactly one call with final set.
package stream
