//nolint:revive
package time

import (
	"math"
	"testing"
)

func makeBenchSignal(n int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(100 * math.Sin(2*math.Pi*float64(i)/float64(n)))
	}

	return out
}

func BenchmarkCalculateInt8(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		signal := makeBenchSignal(n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n))

			for b.Loop() {
				CalculateInt8(signal)
			}
		})
	}
}

func BenchmarkStreamingUpdateInt8(b *testing.B) {
	signal := makeBenchSignal(4096)

	b.ReportAllocs()
	b.SetBytes(int64(len(signal)))

	ss := NewStreamingStats()
	for b.Loop() {
		ss.Reset()
		ss.UpdateInt8(signal)
	}
}
