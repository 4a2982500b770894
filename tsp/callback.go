// Package tsp - the lazy subtour-elimination callback.
//
// The callback is the bridge between the driver's search loop and the
// cycle decomposer. It is stateless across invocations: the only
// fields are immutable shared references (pool, city count, logger),
// so concurrent invocations from parallel search workers need no
// coordination of their own. All per-candidate bookkeeping lives on
// the invocation's stack and dies with it.
package tsp

import (
	"github.com/scher1997/TSP/milp"
	"go.uber.org/zap"
)

// cutGenerator holds the read-only context of the callback.
type cutGenerator struct {
	pool *EdgePool
	n    int
	log  *zap.Logger
}

// onCandidate implements the per-candidate state machine:
// extract the selected edges, decompose into cycles, accept a single
// spanning cycle, otherwise emit exactly one cut over the shortest
// cycle - the minimal amount needed to invalidate the candidate.
//
// A decomposition failure aborts the whole solve: it means the degree
// rows were violated, which is structurally impossible for an accepted
// integral candidate.
func (g *cutGenerator) onCandidate(ctx *milp.CallbackContext) error {
	selected := g.pool.SelectedEdges(ctx.Value)

	cycles, err := Decompose(selected, g.n)
	if err != nil {
		return err
	}

	// A single cycle spanning all cities is a full tour: accept by
	// adding nothing, the driver takes the candidate as incumbent.
	if len(cycles) == 1 && len(cycles[0]) == g.n {
		return nil
	}

	sub := ShortestCycle(cycles)
	cut, err := g.subtourCut(sub)
	if err != nil {
		return err
	}
	g.log.Debug("subtour eliminated",
		zap.Int("cities", len(sub)),
		zap.Int("fragments", len(cycles)))

	return ctx.AddCut(cut)
}

// subtourCut builds  sum of x(u,v) over pairs u<v in S  <=  |S|-1.
// A closed subtour inside S needs |S| internal edges, while any
// Hamiltonian tour restricted to S forms paths with at most |S|-1, so
// the row excludes every all-internal-to-S cycle cover and no genuine
// tour.
func (g *cutGenerator) subtourCut(cities []int) (milp.Constraint, error) {
	k := len(cities)
	terms := make([]milp.Term, 0, k*(k-1)/2)

	var (
		i, j int
		v    milp.VarID
		err  error
	)
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			v, err = g.pool.VariableFor(cities[i], cities[j])
			if err != nil {
				return milp.Constraint{}, err
			}
			terms = append(terms, milp.Term{Var: v, Coef: 1})
		}
	}

	return milp.Constraint{
		Terms: terms,
		Sense: milp.LE,
		RHS:   float64(k - 1),
	}, nil
}
