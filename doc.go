// Package tspsolver is an exact solver for the symmetric Traveling
// Salesman Problem, built on branch-and-cut with lazy subtour
// elimination.
//
// 🚀 What is in the box?
//
//	Two subpackages that together form the solver:
//		• tsp/  — the problem layer: distance oracle, edge variable pool,
//		          degree-2 model, cycle decomposition, subtour cuts, tour
//		          extraction
//		• milp/ — the search layer: a 0-1 integer programming driver
//		          doing branch-and-bound over LP relaxations (gonum
//		          simplex) with lazy constraint callbacks
//
// ✨ Why this design?
//
//   - Exact, not heuristic — every returned tour with StatusOptimal is
//     provably optimal
//   - Lazy cuts — the exponential family of subtour constraints is
//     generated on demand, one violated row at a time
//   - Pure Go — no cgo, no external solver binaries
//   - Deterministic — fixed iteration orders, reproducible tours for a
//     single worker
//
// Quick ASCII example:
//
//	    0───1            a fragmented "solution" (two triangles) is
//	    │ ╳ │            cheap but illegal; a subtour cut forces the
//	    2   3───4        search to bridge the parts into one cycle
//	        │ ╳ │        visiting every city exactly once.
//	        5   ...
//
// Start with tsp.SolveMatrix for dense matrices or tsp.Solve for a
// distance oracle; milp is reusable on its own for other 0-1 programs
// with lazy constraints.
//
//	go get github.com/scher1997/TSP
package tspsolver
