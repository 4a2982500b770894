// Package milp - core types, sentinel errors and solve options.
//
// All errors returned by this package are the package-level sentinels
// below; match them with errors.Is. No function panics on user input.
package milp

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned across the package.
var (
	// ErrNoVariables indicates Solve was called on a model with no
	// registered variables.
	ErrNoVariables = errors.New("milp: model has no variables")

	// ErrBadConstraint indicates a constraint with no terms, a
	// non-finite coefficient or right-hand side, or an unsupported
	// sense for the context (cuts accept LE/GE only).
	ErrBadConstraint = errors.New("milp: malformed constraint")

	// ErrUnknownVariable indicates a constraint term referencing a
	// variable that was never registered on the model.
	ErrUnknownVariable = errors.New("milp: unknown variable id")

	// ErrLazyNotEnabled indicates a lazy callback was registered but
	// EnableLazyConstraints was never called. The search must know up
	// front that rows will arrive mid-search.
	ErrLazyNotEnabled = errors.New("milp: lazy constraints not enabled")

	// ErrCallbackReentry indicates a CallbackContext was used after its
	// callback invocation returned. Contexts are single-invocation.
	ErrCallbackReentry = errors.New("milp: callback context used after return")

	// ErrBadOptions indicates a negative time limit, worker count,
	// or tolerance.
	ErrBadOptions = errors.New("milp: invalid options")

	// ErrRelaxation indicates the simplex failed on a node relaxation
	// for a reason other than infeasibility (numerical breakdown).
	// Should not occur on well-scaled binary models.
	ErrRelaxation = errors.New("milp: LP relaxation failed")
)

// VarID is a dense handle for a registered binary variable.
// IDs are assigned contiguously from 0 in registration order.
type VarID int

// Sense is the relational sense of a linear constraint.
type Sense int

const (
	// LE constrains the row to  sum(terms) <= RHS.
	LE Sense = iota
	// GE constrains the row to  sum(terms) >= RHS.
	GE
	// EQ constrains the row to  sum(terms) == RHS.
	EQ
)

// Term is one coefficient of a sparse constraint row.
type Term struct {
	Var  VarID
	Coef float64
}

// Constraint is a sparse linear row over registered variables.
// Duplicate Var entries are legal and accumulate.
type Constraint struct {
	Terms []Term
	Sense Sense
	RHS   float64
}

// Status reports how a solve terminated.
type Status int

const (
	// StatusOptimal: the search completed; the incumbent is provably
	// optimal under all static constraints and accumulated cuts.
	StatusOptimal Status = iota

	// StatusFeasible: the time budget expired with an incumbent in
	// hand; the solution is feasible but optimality is unproven.
	StatusFeasible

	// StatusInfeasible: the search completed without ever finding an
	// integral feasible point; the model admits none.
	StatusInfeasible

	// StatusNoSolution: the time budget expired before any integral
	// feasible point was found.
	StatusNoSolution
)

// String returns a stable human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusNoSolution:
		return "no-solution"
	default:
		return "unknown"
	}
}

// Default numeric policy. IntTol decides integrality of relaxation
// values; Eps is the strict-improvement margin for incumbent pruning.
const (
	DefaultIntTol = 1e-6
	DefaultEps    = 1e-9
)

// Options configures a solve.
//
//	TimeLimit - soft wall-clock budget; 0 means unlimited.
//	Workers   - parallel search workers; 0 means 1. Results are
//	            deterministic only for Workers == 1.
//	IntTol    - integrality tolerance on relaxation values.
//	Eps       - strict-improvement margin for pruning.
//	Logger    - optional progress logger; nil means no logging.
type Options struct {
	TimeLimit time.Duration
	Workers   int
	IntTol    float64
	Eps       float64
	Logger    *zap.Logger
}

// DefaultOptions returns the canonical starting configuration:
// unlimited time, a single worker, default tolerances, no logging.
func DefaultOptions() Options {
	return Options{
		TimeLimit: 0,
		Workers:   1,
		IntTol:    DefaultIntTol,
		Eps:       DefaultEps,
		Logger:    nil,
	}
}

// Solution is the outcome of Solve.
//
// X holds one value per registered variable (integral within IntTol
// for StatusOptimal/StatusFeasible). Nodes counts processed
// branch-and-bound nodes; Cuts counts lazy rows accumulated.
type Solution struct {
	X         []float64
	Objective float64
	Status    Status
	Nodes     int
	Cuts      int
}

// validateOptions normalizes zero values and rejects negatives.
func validateOptions(opts *Options) error {
	if opts.TimeLimit < 0 || opts.Workers < 0 || opts.IntTol < 0 || opts.Eps < 0 {
		return ErrBadOptions
	}
	if opts.Workers == 0 {
		opts.Workers = 1
	}
	if opts.IntTol == 0 {
		opts.IntTol = DefaultIntTol
	}
	if opts.Eps == 0 {
		opts.Eps = DefaultEps
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return nil
}
