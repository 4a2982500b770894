// Package tsp_test - benchmarks for the branch-and-cut components.
//
// Policy:
//   - Deterministic geometry (rippled circles), no seeds needed.
//   - Pre-build all inputs outside the timer; measure only the core.
//   - No time limits; instances sized to finish comfortably on CI.
package tsp_test

import (
	"math"
	"testing"

	"github.com/scher1997/TSP/tsp"
)

// rippledCircle builds n points on a circle with a deterministic
// radius ripple, avoiding the ties of a perfectly regular polygon.
func rippledCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	var th, r float64
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// BenchmarkSolveMatrix_n8 measures a full exact solve on eight cities.
func BenchmarkSolveMatrix_n8(b *testing.B) {
	dist := euclid(rippledCircle(8))
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tsp.SolveMatrix(dist, opts); err != nil {
			b.Fatalf("SolveMatrix: %v", err)
		}
	}
}

// BenchmarkDecompose_n64 measures the callback's inner loop: cycle
// decomposition of a degree-2 edge set over 64 cities (eight octagons).
func BenchmarkDecompose_n64(b *testing.B) {
	const n, cyc = 64, 8
	selected := make([]tsp.Edge, 0, n)
	var base, k int
	for base = 0; base < n; base += cyc {
		for k = 0; k < cyc; k++ {
			e, err := tsp.NewEdge(base+k, base+(k+1)%cyc)
			if err != nil {
				b.Fatalf("NewEdge: %v", err)
			}
			selected = append(selected, e)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tsp.Decompose(selected, n); err != nil {
			b.Fatalf("Decompose: %v", err)
		}
	}
}
