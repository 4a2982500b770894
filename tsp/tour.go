// Package tsp - tour utilities.
//
// Compact, allocation-conscious helpers operating purely on tour
// structure (index sequences) and the distance oracle. Only sentinel
// errors from types.go; deterministic behavior with explicit pre/post
// conditions.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision, keeping costs
// stable across platforms without affecting optimality.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourCost sums the oracle's distances along the closed tour
// tour[0] -> tour[1] -> ... -> tour[n] (the closing edge included by
// the tour's own last element).
//
// Contract: tour is closed (len >= 4 for n >= 3, tour[0] == tour[n])
// with indices in [0..n-1]. Returns ErrDimensionMismatch on any shape
// violation.
//
// Complexity: O(n).
func TourCost(n int, d DistanceFunc, tour []int) (float64, error) {
	if d == nil || len(tour) < 4 || len(tour) != n+1 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		i    int
		u, v int
	)
	for i = 0; i < n; i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			return 0, ErrDimensionMismatch
		}
		sum += d(u, v)
	}

	return round1e9(sum), nil
}

// ValidateTour enforces the Hamiltonian-cycle invariants:
// len(tour) == n+1, tour[0] == tour[n] == start, and every city in
// [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n < 3 {
		return ErrDegenerateInput
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	var i, v int
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// closeCycle turns an open cycle (n distinct cities, no closing
// repeat) into a closed tour rotated to begin and end at start.
//
// Complexity: O(n) time, O(n) space.
func closeCycle(cycle []int, start int) ([]int, error) {
	n := len(cycle)
	if n < 3 {
		return nil, ErrDegenerateInput
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if cycle[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = cycle[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// canonicalizeOrientation fixes the tour direction under a fixed
// start: if the right neighbor tour[1] is larger than the left
// neighbor tour[n-1], the interior segment is reversed in place. The
// same cyclic order then always prints the same way.
//
// Contract: tour is closed (len == n+1, tour[0] == tour[n]).
//
// Complexity: O(n) time, O(1) space.
func canonicalizeOrientation(tour []int) {
	n := len(tour) - 1
	if n < 3 || tour[1] <= tour[n-1] {
		return
	}
	var i, k = 1, n - 1
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
