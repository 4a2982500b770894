// Package milp - model registration surface.
//
// A Model is built single-threaded, before Solve: register binary
// variables, add static rows, optionally enable lazy-constraint mode
// and attach the callback. Registration is append-only; nothing is
// ever removed. Solve does not mutate the model, so one model may be
// solved repeatedly (each solve starts from an empty cut pool).
package milp

import "math"

// LazyCallback is invoked synchronously, exactly once per newly found
// integral candidate. The context is valid only for the duration of
// the invocation; retaining it and calling AddCut later returns
// ErrCallbackReentry. A non-nil error aborts the entire solve.
type LazyCallback func(ctx *CallbackContext) error

// Model is an append-only 0–1 integer program:
// minimize sum(cost_j * x_j) subject to registered rows, x binary.
type Model struct {
	costs []float64    // objective coefficient per variable
	rows  []Constraint // static rows, validated on entry

	lazyEnabled bool
	callback    LazyCallback
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// NumVars reports the number of registered variables.
func (m *Model) NumVars() int { return len(m.costs) }

// AddBinary registers one binary decision variable with the given
// objective coefficient and returns its handle. AddBinary never fails;
// non-finite coefficients are rejected by Solve (ErrBadConstraint)
// before any search work starts.
//
// Complexity: amortized O(1).
func (m *Model) AddBinary(cost float64) VarID {
	m.costs = append(m.costs, cost)

	return VarID(len(m.costs) - 1)
}

// AddConstraint registers a static linear row. Rows added here are
// present in every relaxation from the first node on.
//
// Errors: ErrBadConstraint (empty row, non-finite numbers, unknown
// sense), ErrUnknownVariable (term referencing an unregistered id).
//
// Complexity: O(len(c.Terms)).
func (m *Model) AddConstraint(c Constraint) error {
	if err := m.checkRow(c, true); err != nil {
		return err
	}
	m.rows = append(m.rows, c)

	return nil
}

// EnableLazyConstraints declares that rows will arrive during the
// search through the lazy callback. Without this declaration a
// registered callback is a configuration error (ErrLazyNotEnabled at
// Solve): the search must know cuts can invalidate otherwise-integral
// candidates.
func (m *Model) EnableLazyConstraints() {
	m.lazyEnabled = true
}

// SetLazyCallback attaches the lazy-constraint callback. At most one
// callback is supported; a second call replaces the first.
func (m *Model) SetLazyCallback(cb LazyCallback) {
	m.callback = cb
}

// checkRow validates a row against the registered variables.
// allowEQ gates the EQ sense: static rows accept it, cuts do not
// (a lazy equality could cut off optima discovered on other workers).
func (m *Model) checkRow(c Constraint, allowEQ bool) error {
	if len(c.Terms) == 0 {
		return ErrBadConstraint
	}
	switch c.Sense {
	case LE, GE:
		// ok
	case EQ:
		if !allowEQ {
			return ErrBadConstraint
		}
	default:
		return ErrBadConstraint
	}
	if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
		return ErrBadConstraint
	}

	var t Term
	for _, t = range c.Terms {
		if t.Var < 0 || int(t.Var) >= len(m.costs) {
			return ErrUnknownVariable
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return ErrBadConstraint
		}
	}

	return nil
}

// validateObjective rejects non-finite objective coefficients before
// the search starts (see AddBinary).
func (m *Model) validateObjective() error {
	var c float64
	for _, c = range m.costs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrBadConstraint
		}
	}

	return nil
}
