// Package roundtrip measures how faithfully a DFPWM encode/decode cycle
// reproduces its input.
//
// [Compare] gives sample-domain error metrics between a reference and a
// reconstruction. [SpectralSNR] weighs the residual in the frequency domain
// over a band of interest. [Run] encodes, decodes and measures in one call.
//
// Samples are signed 8-bit PCM as used by the codec. Inputs of different
// length are compared over the shorter one, since a decoded stream is padded
// to a whole number of bytes.
package roundtrip
