// Package milp - the branch-and-bound search loop.
//
// The engine keeps a LIFO stack of open nodes (depth-first: tightens
// the incumbent early and keeps memory linear in depth), a shared
// incumbent, and an append-only lazy-cut pool. Workers pop nodes,
// solve the node relaxation, then either prune, branch, or run the
// lazy callback on an integral candidate. With a single worker the
// whole search is deterministic.
package milp

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// engine holds all shared solve state. Construction happens once in
// Solve; afterwards the mutable fields are guarded as annotated.
type engine struct {
	model *Model
	opt   Options
	log   *zap.Logger

	// Immutable after construction.
	statEq      []Constraint
	statIneq    []ineqRow
	upper       []ineqRow // x_j <= 1 for every binary variable
	useDeadline bool
	deadline    time.Time

	// Search state, guarded by mu.
	mu      sync.Mutex
	cond    *sync.Cond
	stack   []node
	active  int  // nodes currently being processed
	stopped bool // deadline hit or callback failure
	expired bool
	incX    []float64
	incObj  float64
	hasInc  bool
	nodes   int

	// Lazy-cut pool, guarded by cutMu. Append-only: rows are never
	// retracted, so the feasible region shrinks monotonically even
	// when callbacks fire out of order across workers.
	cutMu sync.RWMutex
	cuts  []ineqRow
}

// Solve runs the branch-and-bound search and returns the best integral
// solution found together with a termination status. See Options for
// the deadline and worker semantics.
//
// Errors: ErrNoVariables, ErrBadConstraint (non-finite objective),
// ErrLazyNotEnabled, ErrBadOptions, ErrRelaxation, plus any error
// returned by the lazy callback (fatal, aborts the search).
func (m *Model) Solve(opts Options) (Solution, error) {
	if err := validateOptions(&opts); err != nil {
		return Solution{}, err
	}
	if len(m.costs) == 0 {
		return Solution{}, ErrNoVariables
	}
	if err := m.validateObjective(); err != nil {
		return Solution{}, err
	}
	if m.callback != nil && !m.lazyEnabled {
		return Solution{}, ErrLazyNotEnabled
	}

	e := &engine{
		model: m,
		opt:   opts,
		log:   opts.Logger,
	}
	e.cond = sync.NewCond(&e.mu)
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Split static rows once: equalities stay as-is, inequalities are
	// normalized to <=. Binary upper bounds become dedicated rows.
	var c Constraint
	for _, c = range m.rows {
		if c.Sense == EQ {
			e.statEq = append(e.statEq, c)
		} else {
			e.statIneq = append(e.statIneq, normalizeIneq(c))
		}
	}
	var j int
	for j = 0; j < len(m.costs); j++ {
		e.upper = append(e.upper, ineqRow{
			terms: []Term{{Var: VarID(j), Coef: 1}},
			rhs:   1,
		})
	}

	// Root node: no fixings.
	e.stack = append(e.stack, node{})

	// Workers share the stack; errgroup propagates the first failure.
	var g errgroup.Group
	var w int
	for w = 0; w < opts.Workers; w++ {
		g.Go(e.worker)
	}
	if err := g.Wait(); err != nil {
		return Solution{}, err
	}

	return e.finish(), nil
}

// worker is the per-goroutine search loop: wait for a node, process
// it, push the children, repeat until the stack drains or the solve
// stops. Any error from process is fatal to the whole solve.
func (e *engine) worker() error {
	for {
		e.mu.Lock()
		for len(e.stack) == 0 && e.active > 0 && !e.stopped {
			e.cond.Wait()
		}
		if e.stopped || (len(e.stack) == 0 && e.active == 0) {
			e.mu.Unlock()
			e.cond.Broadcast() // release any sibling still waiting
			return nil
		}
		nd := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.active++
		e.mu.Unlock()

		children, err := e.process(nd)

		e.mu.Lock()
		e.active--
		if err != nil {
			e.stopped = true
			e.mu.Unlock()
			e.cond.Broadcast()

			return err
		}
		e.stack = append(e.stack, children...)
		e.mu.Unlock()
		e.cond.Broadcast()
	}
}

// process handles one node: relax, prune, branch, or - on an integral
// candidate - run the lazy callback and loop while it keeps cutting.
// Returned children are pushed by the caller; nil means pruned or
// fathomed.
func (e *engine) process(nd node) ([]node, error) {
	for {
		if e.overDeadline() {
			e.mu.Lock()
			e.stopped = true
			e.expired = true
			e.mu.Unlock()

			return nil, nil
		}

		// Snapshot the cut pool for this relaxation. Cuts appended by
		// other workers after this point are picked up on re-solve or
		// by descendant nodes; monotonicity keeps this sound.
		e.cutMu.RLock()
		cuts := e.cuts
		e.cutMu.RUnlock()

		x, obj, feasible, err := e.relax(nd, cuts)
		if err != nil {
			return nil, err
		}
		if !feasible {
			e.countNode()

			return nil, nil // infeasible: fathom
		}

		// Bound: the relaxation already matches or exceeds the
		// incumbent, no completion can improve.
		e.mu.Lock()
		prune := e.hasInc && obj >= e.incObj-e.opt.Eps
		e.mu.Unlock()
		if prune {
			e.countNode()

			return nil, nil
		}

		if v, frac := fractionalVar(x, e.opt.IntTol); frac {
			e.countNode()
			// Explore the rounded side first (LIFO: push it last).
			near := clamp01(x[v])
			children := []node{
				nd.child(v, 1-near),
				nd.child(v, near),
			}

			return children, nil
		}

		// Integral candidate. Hand it to the lazy callback; one
		// invocation per candidate, synchronous, on this worker.
		if e.model.callback != nil {
			added, cerr := e.invokeCallback(x)
			if cerr != nil {
				return nil, cerr
			}
			if added > 0 {
				// The candidate was cut off; re-solve this node with
				// the grown pool.
				continue
			}
		}

		e.countNode()
		e.offerIncumbent(x, obj)

		return nil, nil
	}
}

// invokeCallback runs the lazy callback on a candidate and returns how
// many cuts it added. The context is closed afterwards so a retained
// pointer cannot mutate the pool out of band.
func (e *engine) invokeCallback(x []float64) (int, error) {
	ctx := &CallbackContext{engine: e, x: x}
	err := e.model.callback(ctx)
	ctx.closed = true
	if err != nil {
		return 0, err
	}

	return ctx.added, nil
}

// offerIncumbent installs a strictly better integral solution.
func (e *engine) offerIncumbent(x []float64, obj float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.hasInc && obj >= e.incObj-e.opt.Eps {
		return
	}
	if e.incX == nil {
		e.incX = make([]float64, len(x))
	}
	copy(e.incX, x)
	e.incObj = obj
	e.hasInc = true
	e.log.Debug("new incumbent",
		zap.Float64("objective", obj),
		zap.Int("nodes", e.nodes))
}

// countNode bumps the processed-node counter.
func (e *engine) countNode() {
	e.mu.Lock()
	e.nodes++
	e.mu.Unlock()
}

// overDeadline checks the wall clock once per node. A node costs a
// full simplex run, so the check is noise by comparison.
func (e *engine) overDeadline() bool {
	if !e.useDeadline {
		return false
	}

	return time.Now().After(e.deadline)
}

// finish converts the terminal engine state into a Solution.
func (e *engine) finish() Solution {
	e.cutMu.RLock()
	nCuts := len(e.cuts)
	e.cutMu.RUnlock()

	sol := Solution{Nodes: e.nodes, Cuts: nCuts}
	switch {
	case e.hasInc && !e.expired:
		sol.Status = StatusOptimal
	case e.hasInc && e.expired:
		sol.Status = StatusFeasible
	case e.expired:
		sol.Status = StatusNoSolution
	default:
		sol.Status = StatusInfeasible
	}
	if e.hasInc {
		sol.X = make([]float64, len(e.incX))
		copy(sol.X, e.incX)
		sol.Objective = e.incObj
	}
	e.log.Info("search finished",
		zap.String("status", sol.Status.String()),
		zap.Int("nodes", sol.Nodes),
		zap.Int("cuts", sol.Cuts))

	return sol
}

// clamp01 rounds a near-integral relaxation value to exactly 0 or 1.
func clamp01(v float64) float64 {
	if v < 0.5 {
		return 0
	}

	return 1
}
