// Package tsp - the cycle decomposer.
//
// Every accepted integral candidate satisfies the degree-2 rows, so a
// selected edge set is a disjoint union of simple cycles covering all
// cities. The decomposer exploits that: an explicit visited-marker
// walk with two fixed neighbor slots per city, no list mutation, no
// map iteration. It is the performance-critical inner loop of every
// callback invocation and runs in O(n) total.
package tsp

// Decompose partitions a selected edge set over cities [0..n-1] into
// its cycles. Each cycle is an ordered city sequence without the
// closing repeat; together the cycles cover every city exactly once.
//
// Walk: repeatedly take the lowest unvisited city, follow the unused
// incident edge until the walk returns to its start, record the closed
// walk, repeat. Deterministic for a fixed edge order; the order picks
// which cycle is found first but never changes the partition.
//
// Errors: ErrCallbackFailure when the selection is malformed - any
// city of degree != 2, an out-of-range endpoint, a duplicate edge, or
// a walk shorter than three cities. All of these indicate corrupted
// driver state, not user error.
//
// Complexity: O(n) time and space (each city visited once across all
// walks).
func Decompose(selected []Edge, n int) ([][]int, error) {
	if n < 3 {
		return nil, ErrDegenerateInput
	}
	// Degree-2 invariant fixes the edge count to exactly n.
	if len(selected) != n {
		return nil, ErrCallbackFailure
	}

	// Two neighbor slots per city, filled in edge order.
	var (
		deg = make([]int, n)
		adj = make([][2]int, n)
		e   Edge
	)
	attach := func(c, o int) bool {
		if deg[c] == 2 {
			return false
		}
		adj[c][deg[c]] = o
		deg[c]++

		return true
	}
	for _, e = range selected {
		if e.U < 0 || e.V >= n || e.U >= e.V {
			return nil, ErrCallbackFailure
		}
		if !attach(e.U, e.V) || !attach(e.V, e.U) {
			return nil, ErrCallbackFailure
		}
	}
	var c int
	for c = 0; c < n; c++ {
		if deg[c] != 2 {
			return nil, ErrCallbackFailure
		}
	}

	// Walk out the cycles.
	var (
		visited = make([]bool, n)
		cycles  [][]int
		start   int
	)
	for start = 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var (
			cyc  = make([]int, 0, 8)
			prev = -1
			cur  = start
			nxt  int
		)
		for {
			visited[cur] = true
			cyc = append(cyc, cur)
			nxt = adj[cur][0]
			if nxt == prev {
				nxt = adj[cur][1]
			}
			if nxt == start {
				break
			}
			prev, cur = cur, nxt
		}
		// Simple edges + degree 2 make 1- and 2-walks impossible on a
		// well-formed selection; seeing one means a duplicated pair.
		if len(cyc) < 3 {
			return nil, ErrCallbackFailure
		}
		cycles = append(cycles, cyc)
	}

	return cycles, nil
}

// ShortestCycle returns a cycle of minimum city count; ties go to the
// first such cycle in generation order (lowest leading city). The
// tie-break is an implementation choice with no semantic weight - any
// disqualifying cycle yields a valid cut. Returns nil for no cycles.
//
// Complexity: O(len(cycles)).
func ShortestCycle(cycles [][]int) []int {
	var best []int
	var cyc []int
	for _, cyc = range cycles {
		if best == nil || len(cyc) < len(best) {
			best = cyc
		}
	}

	return best
}
