// Package tsp - the edge variable pool.
//
// There is structurally exactly one variable per unordered city pair:
// Edge normalizes (i,j) and (j,i) to a single canonical key, so the
// pool never owns directional copies - only two lookup paths into the
// same value. The pool is read-only after construction and safe to
// share across concurrent callback invocations.
package tsp

import (
	"github.com/scher1997/TSP/milp"
)

// Edge is an unordered pair of distinct cities, stored canonically
// with U < V.
type Edge struct {
	U, V int
}

// NewEdge returns the canonical edge for the pair {i, j}.
// ErrUnknownEdge for i == j or negative indices; upper-range checks
// belong to the pool, which knows n.
func NewEdge(i, j int) (Edge, error) {
	if i == j || i < 0 || j < 0 {
		return Edge{}, ErrUnknownEdge
	}
	if i < j {
		return Edge{U: i, V: j}, nil
	}

	return Edge{U: j, V: i}, nil
}

// Other returns the endpoint of e that is not c. Out-of-edge cities
// return -1.
func (e Edge) Other(c int) int {
	switch c {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return -1
	}
}

// EdgePool maps every unordered pair of distinct cities to one binary
// decision variable owned by the integer program. Variables are
// created once, before the search, and live for the whole solve;
// everything else holds non-owning VarID handles.
type EdgePool struct {
	n    int
	vars []milp.VarID // triangular layout, see index()
}

// NewEdgePool registers one binary variable per unordered pair of the
// n cities on the model, with objective coefficient d(u, v), and
// returns the pool. The caller validates d beforehand (see oracle.go).
//
// Errors: ErrDegenerateInput for n < 3.
//
// Complexity: O(n²) time and space.
func NewEdgePool(m *milp.Model, n int, d DistanceFunc) (*EdgePool, error) {
	if n < 3 {
		return nil, ErrDegenerateInput
	}

	p := &EdgePool{
		n:    n,
		vars: make([]milp.VarID, n*(n-1)/2),
	}
	var u, v int
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			p.vars[p.index(u, v)] = m.AddBinary(d(u, v))
		}
	}

	return p, nil
}

// N reports the number of cities.
func (p *EdgePool) N() int { return p.n }

// NumEdges reports the number of unordered pairs, n(n-1)/2.
func (p *EdgePool) NumEdges() int { return len(p.vars) }

// index maps a canonical pair u < v into the flattened upper triangle:
// rows of decreasing length, offset u*(2n-u-1)/2, then (v-u-1) within
// the row. The caller guarantees 0 <= u < v < n.
func (p *EdgePool) index(u, v int) int {
	return u*(2*p.n-u-1)/2 + (v - u - 1)
}

// VariableFor returns the decision variable for the pair {i, j} in
// either endpoint order.
//
// Errors: ErrUnknownEdge when i == j or either city is outside
// [0..n-1].
//
// Complexity: O(1).
func (p *EdgePool) VariableFor(i, j int) (milp.VarID, error) {
	if i == j || i < 0 || j < 0 || i >= p.n || j >= p.n {
		return 0, ErrUnknownEdge
	}
	if i > j {
		i, j = j, i
	}

	return p.vars[p.index(i, j)], nil
}

// EdgesIncident returns the n-1 edges touching city c in ascending
// order of the other endpoint - the row used to build the per-city
// degree-2 constraint.
//
// Errors: ErrUnknownEdge for c outside [0..n-1].
//
// Complexity: O(n) time and space.
func (p *EdgePool) EdgesIncident(c int) ([]Edge, error) {
	if c < 0 || c >= p.n {
		return nil, ErrUnknownEdge
	}

	out := make([]Edge, 0, p.n-1)
	var o int
	for o = 0; o < p.n; o++ {
		if o == c {
			continue
		}
		e, _ := NewEdge(c, o) // cannot fail: o != c, both in range
		out = append(out, e)
	}

	return out, nil
}

// SelectedEdges translates a solution vector into graph structure: the
// edges whose variable value exceeds 0.5. This is the single point of
// truth between decision variables and edges; all downstream reasoning
// (decomposition, cuts, tour extraction) operates on the result.
//
// The slice is freshly allocated per call and ordered by ascending
// (U, V) - deterministic for a fixed valuation.
//
// Complexity: O(n²) time, O(selected) space.
func (p *EdgePool) SelectedEdges(value func(milp.VarID) float64) []Edge {
	out := make([]Edge, 0, p.n)
	var u, v int
	for u = 0; u < p.n; u++ {
		for v = u + 1; v < p.n; v++ {
			if value(p.vars[p.index(u, v)]) > 0.5 {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}
