// Package tsp - the distance oracle and its validation.
//
// The oracle is a pure function over city indices. Validation is the
// single gate between caller-supplied distances and the solver: after
// it passes, every component downstream may assume a complete,
// symmetric, non-negative, finite metric and never re-checks.
package tsp

import "math"

// DistanceFunc is the distance oracle: d(i, j) for two distinct city
// indices in [0..n-1]. It must be symmetric and non-negative.
// d(i, i) is out of contract - no edge joins a city to itself, and no
// component here ever asks for it.
type DistanceFunc func(i, j int) float64

// MatrixDistance adapts a dense square matrix to a DistanceFunc.
// The matrix is captured by reference and must not be mutated during
// a solve. Shape/value validation happens in SolveMatrix, not here.
func MatrixDistance(dist [][]float64) DistanceFunc {
	return func(i, j int) float64 {
		return dist[i][j]
	}
}

// validateDistanceFunc probes every unordered pair once and checks the
// oracle contract: finite, non-negative, symmetric within symTol.
//
// Errors: ErrDimensionMismatch (NaN/±Inf), ErrNegativeWeight,
// ErrAsymmetry.
//
// Complexity: O(n²) oracle calls, O(1) space.
func validateDistanceFunc(n int, d DistanceFunc) error {
	var (
		i, j     int
		dij, dji float64
		diff     float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dij = d(i, j)
			if math.IsNaN(dij) || math.IsInf(dij, 0) {
				return ErrDimensionMismatch
			}
			if dij < 0 {
				return ErrNegativeWeight
			}
			dji = d(j, i)
			if math.IsNaN(dji) || math.IsInf(dji, 0) {
				return ErrDimensionMismatch
			}
			diff = dij - dji
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

// validateMatrix performs full shape+value validation of a dense
// distance matrix and returns its order n:
//   - non-nil, square (every row of length n),
//   - n >= 3 (ErrDegenerateInput otherwise),
//   - diagonal ~ 0 within symTol, finite,
//   - off-diagonal finite, non-negative, symmetric within symTol.
//
// Complexity: O(n²).
func validateMatrix(dist [][]float64) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := len(dist)

	var i, j int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}
	if n < 3 {
		return 0, ErrDegenerateInput
	}

	// Diagonal: ~0 within tolerance, finite.
	var v float64
	for i = 0; i < n; i++ {
		v = dist[i][i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrDimensionMismatch
		}
		if v < 0 {
			v = -v
		}
		if v > symTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan: values first, then symmetry on the upper
	// triangle (value errors take priority over asymmetry).
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = dist[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrDimensionMismatch
			}
			if v < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}
	var diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = dist[i][j] - dist[j][i]
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
