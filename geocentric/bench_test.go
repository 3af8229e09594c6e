package geocentric_test

import (
	"testing"

	"github.com/Rightbot-robotics/geographiclib/geocentric"
)

// sink keeps the compiler from optimizing the transforms away.
var sink float64

// benchmarkReverse is a helper that runs Reverse on a fixed ECEF point.
func benchmarkReverse(b *testing.B, x, y, z float64) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		lat, lon, h := geocentric.WGS84.Reverse(x, y, z)
		sink = lat + lon + h
	}
}

// BenchmarkForward benchmarks the closed-form geodetic → ECEF direction.
func BenchmarkForward(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x, y, z := geocentric.WGS84.Forward(48.8584, 2.2945, 101)
		sink = x + y + z
	}
}

// BenchmarkReverse_Generic benchmarks the trigonometric cubic solve on a
// typical mid-latitude surface point.
func BenchmarkReverse_Generic(b *testing.B) {
	x, y, z := geocentric.WGS84.Forward(48.8584, 2.2945, 101)
	benchmarkReverse(b, x, y, z)
}

// BenchmarkReverse_PolarAxis benchmarks the on-axis path (p = 0 collapses
// the cubic to its exact closed form).
func BenchmarkReverse_PolarAxis(b *testing.B) {
	benchmarkReverse(b, 0, 0, 7000e3)
}

// BenchmarkReverse_FarPoint benchmarks the far-point guard beyond maxrad.
func BenchmarkReverse_FarPoint(b *testing.B) {
	benchmarkReverse(b, 1e25, 2e25, 3e25)
}
