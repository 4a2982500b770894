package milp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scher1997/TSP/milp"
)

func TestModel_AddBinary_AssignsDenseIDs(t *testing.T) {
	m := milp.NewModel()

	v0 := m.AddBinary(1.5)
	v1 := m.AddBinary(-2.0)
	v2 := m.AddBinary(0)

	assert.Equal(t, milp.VarID(0), v0)
	assert.Equal(t, milp.VarID(1), v1)
	assert.Equal(t, milp.VarID(2), v2)
	assert.Equal(t, 3, m.NumVars())
}

func TestModel_AddConstraint_Validation(t *testing.T) {
	m := milp.NewModel()
	v := m.AddBinary(1)

	// Empty row.
	err := m.AddConstraint(milp.Constraint{Sense: milp.LE, RHS: 1})
	require.ErrorIs(t, err, milp.ErrBadConstraint)

	// Unknown variable id.
	err = m.AddConstraint(milp.Constraint{
		Terms: []milp.Term{{Var: 99, Coef: 1}},
		Sense: milp.LE,
		RHS:   1,
	})
	require.ErrorIs(t, err, milp.ErrUnknownVariable)

	// Negative variable id.
	err = m.AddConstraint(milp.Constraint{
		Terms: []milp.Term{{Var: -1, Coef: 1}},
		Sense: milp.LE,
		RHS:   1,
	})
	require.ErrorIs(t, err, milp.ErrUnknownVariable)

	// Unknown sense value.
	err = m.AddConstraint(milp.Constraint{
		Terms: []milp.Term{{Var: v, Coef: 1}},
		Sense: milp.Sense(42),
		RHS:   1,
	})
	require.ErrorIs(t, err, milp.ErrBadConstraint)

	// Well-formed EQ row is accepted.
	err = m.AddConstraint(milp.Constraint{
		Terms: []milp.Term{{Var: v, Coef: 1}},
		Sense: milp.EQ,
		RHS:   1,
	})
	require.NoError(t, err)
}

func TestSolve_ConfigurationErrors(t *testing.T) {
	// No variables at all.
	m := milp.NewModel()
	_, err := m.Solve(milp.DefaultOptions())
	require.ErrorIs(t, err, milp.ErrNoVariables)

	// Callback registered without enabling lazy mode.
	m = milp.NewModel()
	m.AddBinary(1)
	m.SetLazyCallback(func(ctx *milp.CallbackContext) error { return nil })
	_, err = m.Solve(milp.DefaultOptions())
	require.ErrorIs(t, err, milp.ErrLazyNotEnabled)

	// Negative worker count.
	m = milp.NewModel()
	m.AddBinary(1)
	opts := milp.DefaultOptions()
	opts.Workers = -1
	_, err = m.Solve(opts)
	require.ErrorIs(t, err, milp.ErrBadOptions)

	// Negative time limit.
	opts = milp.DefaultOptions()
	opts.TimeLimit = -1
	_, err = m.Solve(opts)
	require.ErrorIs(t, err, milp.ErrBadOptions)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "optimal", milp.StatusOptimal.String())
	assert.Equal(t, "feasible", milp.StatusFeasible.String())
	assert.Equal(t, "infeasible", milp.StatusInfeasible.String())
	assert.Equal(t, "no-solution", milp.StatusNoSolution.String())
	assert.Equal(t, "unknown", milp.Status(99).String())
}
