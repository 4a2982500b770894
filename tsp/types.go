// Package tsp - core types, sentinel errors and solve options.
//
// Design principles (shared across the package):
//   - Strict sentinels: every error below is a package-level sentinel;
//     match with errors.Is. No fmt.Errorf where a sentinel suffices.
//   - No logging, no panics inside algorithm code; the optional zap
//     logger only observes the search driver.
//   - Deterministic: fixed iteration orders, no time-based randomness.
//   - Stable cost: all returned costs are rounded to 1e-9.
package tsp

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned across the package.
var (
	// ErrDegenerateInput indicates fewer than three cities: no tour
	// exists. Reported before the search begins, never via the
	// callback.
	ErrDegenerateInput = errors.New("tsp: fewer than three cities")

	// ErrUnknownEdge indicates an edge lookup for a city pair outside
	// the registered set, or for a city paired with itself. A correctly
	// wired system never triggers it; it flags a construction bug.
	ErrUnknownEdge = errors.New("tsp: unknown edge")

	// ErrInfeasibleModel indicates the driver reported infeasibility.
	// Degree-2 rows plus subtour cuts always admit the optimal tour,
	// so this is a fatal configuration error, never retried.
	ErrInfeasibleModel = errors.New("tsp: model reported infeasible")

	// ErrCallbackFailure indicates a malformed selected edge set inside
	// decomposition (a city with degree != 2). Structurally impossible
	// for an accepted integral candidate; the solve aborts rather than
	// silently continuing.
	ErrCallbackFailure = errors.New("tsp: selected edges violate degree-2")

	// ErrTimeLimit indicates the time budget expired before any tour
	// was found. Expiry with a tour in hand is not an error - the
	// result carries StatusFeasible instead.
	ErrTimeLimit = errors.New("tsp: time limit exceeded before any tour")

	// ErrNonSquare is returned for a non-square distance matrix.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when some d(i,i) deviates from 0
	// beyond the structural tolerance.
	ErrNonZeroDiagonal = errors.New("tsp: nonzero diagonal distance")

	// ErrAsymmetry is returned when d(i,j) and d(j,i) disagree beyond
	// the structural tolerance.
	ErrAsymmetry = errors.New("tsp: asymmetric distances")

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrDimensionMismatch is the generic shape/value sentinel:
	// nil or ragged matrices, NaN/Inf distances, malformed tours,
	// negative option values.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange is returned when Options.StartVertex is not
	// in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// symTol is the structural tolerance for symmetry/diagonal checks.
// It is independent from Options.Eps (which governs search pruning).
const symTol = 1e-12

// Status reports whether the returned tour is proven optimal.
type Status int

const (
	// StatusOptimal: the search completed; the tour is provably optimal.
	StatusOptimal Status = iota

	// StatusFeasible: the time budget expired; the tour is the best
	// incumbent found, optimality unproven.
	StatusFeasible
)

// String returns a stable human-readable status name.
func (s Status) String() string {
	if s == StatusOptimal {
		return "optimal"
	}

	return "feasible"
}

// Result is the outcome of a branch-and-cut solve.
//
// Tour is the closed city sequence: for n cities len(Tour) == n+1 and
// Tour[0] == Tour[n] == Options.StartVertex, in canonical orientation.
// Cuts counts subtour-elimination rows generated during the search;
// Nodes counts branch-and-bound nodes processed by the driver.
type Result struct {
	Tour   []int
	Cost   float64
	Status Status
	Cuts   int
	Nodes  int
}

// Options configures a solve.
//
//	StartVertex - city the returned tour starts and ends at.
//	TimeLimit   - soft wall-clock budget; 0 means unlimited. On expiry
//	              the best tour found so far is returned with
//	              StatusFeasible (ErrTimeLimit when none exists yet).
//	Workers     - parallel search workers in the driver; 0 means 1.
//	Eps         - strict-improvement margin for incumbent pruning.
//	Logger      - optional search progress logger; nil means silent.
type Options struct {
	StartVertex int
	TimeLimit   time.Duration
	Workers     int
	Eps         float64
	Logger      *zap.Logger
}

// DefaultOptions returns the canonical starting configuration:
// start at city 0, unlimited time, single worker, strict epsilon,
// no logging.
func DefaultOptions() Options {
	return Options{
		StartVertex: 0,
		TimeLimit:   0,
		Workers:     1,
		Eps:         1e-9,
		Logger:      nil,
	}
}
