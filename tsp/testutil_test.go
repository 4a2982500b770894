// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package. The helpers are intentionally minimal, stdlib-only,
// and avoid duplicating functionality that already lives in focused test files.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/scher1997/TSP/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsCost is the tolerance for tour-cost comparisons. Returned costs
	// are rounded to 1e-9, so anything tighter only tests the rounding.
	epsCost = 1e-9

	// epsLoose is a relaxed tolerance for occasional noisy geometric comparisons.
	epsLoose = 1e-6

	// startV is the canonical start vertex used across tests for normalization.
	startV = 0

	// timeTiny is a tiny wall-clock budget used to exercise deadline behavior.
	timeTiny = time.Nanosecond

	// repeatN is how many times determinism checks re-run a solve.
	repeatN = 5
)

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrDegenerateInput, ErrTimeLimit, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustFloatClose asserts |got-want| <= abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}

// -----------------------------------------------------------------------------
// Geometric generators and reference instances
// -----------------------------------------------------------------------------

// euclid builds a symmetric metric from 2D points with zero diagonal.
func euclid(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Hypot(dx, dy)
			a[i][j] = d
			a[j][i] = d
		}
	}

	return a
}

// triangle3 is the minimal instance: three cities, optimal closed cost 6.
func triangle3() [][]float64 {
	return [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}
}

// pentagonPts is an irregular convex pentagon in hull order. Convexity
// makes the hull ordering the unique optimal tour, so both the optimal
// sequence and its cost (the perimeter) are known in closed form.
func pentagonPts() [][2]float64 {
	return [][2]float64{{0, 0}, {4, 0}, {6, 3}, {3, 6}, {-1, 3}}
}

// pentagonPerimeter is the exact optimal cost of the pentagonPts instance.
func pentagonPerimeter() float64 {
	pts := pentagonPts()
	var sum float64
	var i int
	for i = 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		sum += math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
	}

	return sum
}

// twoClusters builds an instance of two tight triangles far apart. The
// cheap fragmented "solution" (two separate triangles) violates
// connectivity, so the solve must generate at least one subtour cut.
func twoClusters() [][]float64 {
	return euclid([][2]float64{
		{0, 0}, {1, 0}, {0.5, 0.9},
		{100, 0}, {101, 0}, {100.5, 0.9},
	})
}

// bruteForce finds the optimal closed tour cost from startV by trying
// every permutation of the remaining cities. Usable up to n ~ 9.
func bruteForce(dist [][]float64) float64 {
	n := len(dist)
	perm := make([]int, 0, n-1)
	used := make([]bool, n)
	best := math.Inf(1)

	var walk func(last int, cost float64)
	walk = func(last int, cost float64) {
		if cost >= best {
			return
		}
		if len(perm) == n-1 {
			if total := cost + dist[last][startV]; total < best {
				best = total
			}

			return
		}
		var c int
		for c = 1; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			perm = append(perm, c)
			walk(c, cost+dist[last][c])
			perm = perm[:len(perm)-1]
			used[c] = false
		}
	}
	walk(startV, 0)

	return best
}

// mustSolveMatrix runs SolveMatrix with the given options and fails the
// test on error.
func mustSolveMatrix(t *testing.T, dist [][]float64, opts tsp.Options) tsp.Result {
	t.Helper()
	res, err := tsp.SolveMatrix(dist, opts)
	if err != nil {
		t.Fatalf("SolveMatrix: %v", err)
	}

	return res
}
