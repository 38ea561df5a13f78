// Package window generates the cosine-sum window functions used to frame
// signals before an FFT.
package window
