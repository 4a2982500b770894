// Package milp - node relaxations via gonum's simplex.
//
// Every branch-and-bound node is the static model plus the global cut
// pool plus the node's branch fixings, relaxed to a linear program.
// The LP is folded into standard form (min c'x, Ax = b, x >= 0) by
// giving every inequality row its own slack variable, then handed to
// gonum's lp.Simplex. Binary upper bounds (x_j <= 1) are materialized
// once as inequality rows; branch fixings become equality rows.
package milp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// fix pins one binary variable on a branch (val is 0 or 1).
type fix struct {
	v   VarID
	val float64
}

// node is one branch-and-bound subproblem: the chain of fixings made
// on the way down from the root. Everything else (static rows, cuts)
// is shared.
type node struct {
	fixed []fix
}

// child returns a copy of the node with one extra fixing appended.
// The parent's slice is never aliased: children outlive the parent on
// the work stack and may be processed by different workers.
func (nd node) child(v VarID, val float64) node {
	fixed := make([]fix, len(nd.fixed), len(nd.fixed)+1)
	copy(fixed, nd.fixed)

	return node{fixed: append(fixed, fix{v: v, val: val})}
}

// ineqRow is a normalized inequality: sum(terms) <= rhs.
type ineqRow struct {
	terms []Term
	rhs   float64
}

// normalizeIneq converts an LE/GE constraint to the <= form. The term
// slice is always copied: rows live in the shared pool and must not
// alias caller-owned memory. The caller guarantees the sense is LE or
// GE (checkRow).
func normalizeIneq(c Constraint) ineqRow {
	var (
		terms = make([]Term, len(c.Terms))
		sign  = 1.0
		rhs   = c.RHS
		i     int
	)
	if c.Sense == GE {
		sign, rhs = -1.0, -c.RHS
	}
	for i = range c.Terms {
		terms[i] = Term{Var: c.Terms[i].Var, Coef: sign * c.Terms[i].Coef}
	}

	return ineqRow{terms: terms, rhs: rhs}
}

// relax assembles and solves the LP relaxation of nd under the given
// cut pool snapshot. It returns the variable values (length NumVars),
// the objective, and feasible=false when the LP has no solution.
//
// Standard-form layout (columns): [ x_0 .. x_{nv-1} | slacks ].
// Row order: static EQ rows, branch fixings, then one row per
// inequality (static LE/GE, upper bounds, cuts) with its slack.
//
// Complexity: O(rows*cols) assembly plus the simplex itself.
func (e *engine) relax(nd node, cuts []ineqRow) (x []float64, obj float64, feasible bool, err error) {
	var (
		nv    = len(e.model.costs)
		nIneq = len(e.statIneq) + len(e.upper) + len(cuts)
		nEq   = len(e.statEq) + len(nd.fixed)
		mRows = nEq + nIneq
		nCols = nv + nIneq
	)

	// Objective: original costs, zero on slacks.
	c := make([]float64, nCols)
	copy(c, e.model.costs)

	A := mat.NewDense(mRows, nCols, nil)
	b := make([]float64, mRows)

	var (
		r int // current row
		t Term
	)

	// Static equality rows.
	var eq Constraint
	for _, eq = range e.statEq {
		for _, t = range eq.Terms {
			A.Set(r, int(t.Var), A.At(r, int(t.Var))+t.Coef) // accumulate duplicates
		}
		b[r] = eq.RHS
		r++
	}

	// Branch fixings as x_v == val.
	var f fix
	for _, f = range nd.fixed {
		A.Set(r, int(f.v), 1)
		b[r] = f.val
		r++
	}

	// Inequalities: each row gets slack column nv+k.
	k := 0
	fill := func(row ineqRow) {
		for _, t = range row.terms {
			A.Set(r, int(t.Var), A.At(r, int(t.Var))+t.Coef)
		}
		A.Set(r, nv+k, 1)
		b[r] = row.rhs
		r++
		k++
	}
	var ir ineqRow
	for _, ir = range e.statIneq {
		fill(ir)
	}
	for _, ir = range e.upper {
		fill(ir)
	}
	for _, ir = range cuts {
		fill(ir)
	}

	// tol == 0 lets gonum pick its default pivot tolerance.
	z, xs, serr := lp.Simplex(c, A, b, 0, nil)
	if serr != nil {
		if errors.Is(serr, lp.ErrInfeasible) {
			return nil, 0, false, nil
		}
		// Unbounded cannot occur (all columns are bounded by the upper
		// rows); anything else is a numerical breakdown.
		return nil, 0, false, ErrRelaxation
	}

	return xs[:nv], z, true, nil
}

// fractionalVar returns the index of the most fractional variable and
// whether any variable is fractional at all (beyond intTol). Ties are
// broken by the lowest index, keeping the branching deterministic.
func fractionalVar(x []float64, intTol float64) (VarID, bool) {
	var (
		best     = -1
		bestDist = intTol
		i        int
		d        float64
	)
	for i = range x {
		d = math.Abs(x[i] - math.Round(x[i]))
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}

	return VarID(best), true
}
