// Package milp solves small 0–1 integer programs exactly via
// branch-and-bound over LP relaxations, with optional lazy constraints.
//
// The package exists to serve cutting-plane solvers (see the tsp
// package): a Model registers binary variables with objective
// coefficients and static linear constraints, optionally enables
// lazy-constraint mode, and Solve runs a deterministic depth-first
// branch-and-bound search. Each node's LP relaxation is folded into
// standard form (inequalities absorbed by slack variables) and handed
// to gonum's simplex.
//
// Lazy constraints:
//
//   - The callback is invoked synchronously, exactly once per newly
//     found integral candidate, on the worker that found it.
//   - It reads candidate values through CallbackContext.Value and may
//     add inequality rows through CallbackContext.AddCut.
//   - Cuts are cumulative and permanent: once added, every LP solved
//     afterwards (on any worker) includes them. The feasible region
//     only shrinks over the lifetime of a solve.
//   - If the callback adds at least one cut, the candidate is discarded
//     and the node is re-solved; if it adds none, the candidate becomes
//     the incumbent when it improves.
//
// Use this package when the model is binary, modest in size (hundreds
// of variables), and the interesting work happens in the cuts — not as
// a general-purpose MIP solver.
package milp
