// Package pcm converts audio between common sample formats and the signed
// 8-bit PCM that DFPWM consumes and produces.
//
// Plain conversions ([FromFloat64], [FromInt16], [FromUnsigned8] and their
// inverses) round or truncate deterministically. [Quantizer] reduces float
// audio to 8 bits with optional dither and error-feedback noise shaping,
// which keeps quiet passages from collapsing into the codec's idle pattern.
//
// Float samples use the convention -1.0 ↔ -128 and +1.0 ↔ +128 (saturated
// to 127), so every int8 value survives ToFloat64 followed by FromFloat64.
package pcm
