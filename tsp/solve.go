// Package tsp - the public solve entry points.
//
// This file wires the components together: validate the oracle, build
// the edge variable pool and the degree-2 rows on a milp model, enable
// lazy constraints, attach the subtour callback, run the search, and
// translate the winning solution vector back into a closed tour.
package tsp

import (
	"github.com/scher1997/TSP/milp"
	"go.uber.org/zap"
)

// Solve runs the exact branch-and-cut on n cities with the given
// distance oracle.
//
// Contracts:
//   - n >= 3 (ErrDegenerateInput otherwise).
//   - d symmetric, non-negative, finite for all distinct pairs
//     (validated up front in O(n²); see oracle.go for sentinels).
//   - opts.StartVertex in [0..n-1].
//
// The returned tour is closed (len n+1), starts and ends at
// opts.StartVertex, and is in canonical orientation. Status reports
// proven optimality versus best-found-under-deadline.
//
// Errors: validation sentinels above; ErrInfeasibleModel,
// ErrTimeLimit, ErrCallbackFailure on the paths documented in
// types.go; driver errors pass through unchanged.
func Solve(n int, d DistanceFunc, opts Options) (Result, error) {
	if n < 3 {
		return Result{}, ErrDegenerateInput
	}
	if d == nil {
		return Result{}, ErrDimensionMismatch
	}
	if err := validateOptions(n, opts); err != nil {
		return Result{}, err
	}
	if err := validateDistanceFunc(n, d); err != nil {
		return Result{}, err
	}

	return solve(n, d, opts)
}

// SolveMatrix runs Solve on a dense symmetric distance matrix.
// The matrix is validated (shape, diagonal, symmetry, value policy)
// and then consumed through the MatrixDistance adapter.
func SolveMatrix(dist [][]float64, opts Options) (Result, error) {
	n, err := validateMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(n, opts); err != nil {
		return Result{}, err
	}

	return solve(n, MatrixDistance(dist), opts)
}

// validateOptions checks option ranges once n is known.
func validateOptions(n int, opts Options) error {
	if opts.TimeLimit < 0 || opts.Workers < 0 || opts.Eps < 0 {
		return ErrDimensionMismatch
	}
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// solve assumes validated inputs and performs the actual wiring.
func solve(n int, d DistanceFunc, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Stage 1 - model construction: the pool owns one binary variable
	// per unordered pair (objective = distance), each city contributes
	// one static degree-2 equality. All rows are pre-registered; the
	// only rows added later are subtour cuts from the callback.
	model := milp.NewModel()
	pool, err := NewEdgePool(model, n, d)
	if err != nil {
		return Result{}, err
	}

	var (
		c     int
		e     Edge
		v     milp.VarID
		edges []Edge
	)
	for c = 0; c < n; c++ {
		edges, err = pool.EdgesIncident(c)
		if err != nil {
			return Result{}, err
		}
		terms := make([]milp.Term, 0, len(edges))
		for _, e = range edges {
			v, err = pool.VariableFor(e.U, e.V)
			if err != nil {
				return Result{}, err
			}
			terms = append(terms, milp.Term{Var: v, Coef: 1})
		}
		err = model.AddConstraint(milp.Constraint{
			Terms: terms,
			Sense: milp.EQ,
			RHS:   2,
		})
		if err != nil {
			return Result{}, err
		}
	}

	// Stage 2 - lazy subtour elimination. The mode must be enabled
	// explicitly so the search knows rows will arrive mid-flight.
	model.EnableLazyConstraints()
	gen := &cutGenerator{pool: pool, n: n, log: log}
	model.SetLazyCallback(gen.onCandidate)

	// Stage 3 - search.
	sol, err := model.Solve(milp.Options{
		TimeLimit: opts.TimeLimit,
		Workers:   opts.Workers,
		Eps:       opts.Eps,
		Logger:    log,
	})
	if err != nil {
		return Result{}, err
	}

	switch sol.Status {
	case milp.StatusInfeasible:
		return Result{}, ErrInfeasibleModel
	case milp.StatusNoSolution:
		return Result{}, ErrTimeLimit
	}

	// Stage 4 - translate the winning vector back into a tour.
	tour, err := extractTour(pool, sol.X, n, opts.StartVertex)
	if err != nil {
		return Result{}, err
	}
	cost, err := TourCost(n, d, tour)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Tour:  tour,
		Cost:  cost,
		Cuts:  sol.Cuts,
		Nodes: sol.Nodes,
	}
	if sol.Status == milp.StatusFeasible {
		res.Status = StatusFeasible
	} else {
		res.Status = StatusOptimal
	}

	return res, nil
}

// extractTour decomposes the accepted solution vector and closes the
// single spanning cycle at start. The callback guarantees every
// incumbent decomposes into exactly one spanning cycle; anything else
// here means corrupted driver state.
func extractTour(pool *EdgePool, x []float64, n int, start int) ([]int, error) {
	selected := pool.SelectedEdges(func(v milp.VarID) float64 {
		return x[v]
	})
	cycles, err := Decompose(selected, n)
	if err != nil {
		return nil, err
	}
	if len(cycles) != 1 || len(cycles[0]) != n {
		return nil, ErrCallbackFailure
	}

	tour, err := closeCycle(cycles[0], start)
	if err != nil {
		return nil, err
	}
	canonicalizeOrientation(tour)
	if err = ValidateTour(tour, n, start); err != nil {
		return nil, err
	}

	return tour, nil
}
