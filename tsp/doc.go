// Package tsp solves the symmetric Travelling Salesman Problem exactly
// via branch-and-cut with lazily generated subtour-elimination
// constraints.
//
// The model is the classic one: one binary variable per unordered city
// pair, objective = total distance, and a degree-2 equality per city.
// Subtour elimination is not stated up front (the family is
// exponential); instead, every integral candidate found by the search
// is decomposed into cycles, and a fragmented candidate is excluded by
// a single cut
//
//	sum of x(u,v) over u,v in S  <=  |S| - 1
//
// over the shortest cycle's city set S. The cut provably excludes that
// fragmentation without excluding any Hamiltonian tour.
//
// Components:
//
//   - DistanceFunc        — the distance oracle (symmetric, ≥ 0).
//   - EdgePool            — one binary variable per unordered pair,
//     canonical lookup from either endpoint order.
//   - Decompose           — partitions a degree-2 edge selection into
//     its cycles in O(n).
//   - Solve / SolveMatrix — wire the model into the milp driver and
//     return the optimal closed tour.
//
// Determinism: fixed iteration orders throughout; a single-worker
// solve returns identical tours and costs across runs. Costs are
// stabilized to 1e-9 to avoid cross-platform FP drift.
//
// Out of scope: coordinate handling, asymmetric or capacitated
// variants, and heuristic solvers.
package tsp
