// Package milp - the lazy-constraint callback surface.
package milp

// CallbackContext is the read/write surface handed to the lazy
// callback for a single integral candidate. It carries only what the
// contract needs: a value accessor over the candidate and a cut
// emitter into the shared pool. The context is valid solely for the
// duration of the invocation; both accessors reject use after return.
//
// Contexts are never shared between invocations or workers, so a
// callback may be running concurrently on several workers without any
// coordination beyond the pool's own locking.
type CallbackContext struct {
	engine *engine
	x      []float64
	added  int
	closed bool
}

// Value returns the candidate's value for v (integral within the
// solve's IntTol). Out-of-range handles return 0; the callback is
// expected to hold only handles minted by the model it was attached
// to, so there is no error channel on the hot path.
func (ctx *CallbackContext) Value(v VarID) float64 {
	if ctx.closed || v < 0 || int(v) >= len(ctx.x) {
		return 0
	}

	return ctx.x[v]
}

// NumVars reports the number of variables in the candidate vector.
func (ctx *CallbackContext) NumVars() int { return len(ctx.x) }

// AddCut appends a permanent inequality row to the shared cut pool.
// The row takes effect for every relaxation solved after this call,
// including the re-solve of the candidate that triggered it - that is
// the entire rejection mechanism: the candidate is never refused
// directly, it becomes infeasible retroactively.
//
// Only LE/GE rows are accepted (ErrBadConstraint for EQ or malformed
// rows); ErrCallbackReentry after the invocation returned.
func (ctx *CallbackContext) AddCut(c Constraint) error {
	if ctx.closed {
		return ErrCallbackReentry
	}
	if err := ctx.engine.model.checkRow(c, false); err != nil {
		return err
	}

	row := normalizeIneq(c)
	ctx.engine.cutMu.Lock()
	ctx.engine.cuts = append(ctx.engine.cuts, row)
	ctx.engine.cutMu.Unlock()
	ctx.added++

	return nil
}
