// Package tsp - matrix reduction primitives for Branch & Bound (least-cost).
//
// reduce and markUsed implement the row/column reduction bound used by
// BranchAndBoundLC: subtracting each row's (then each column's) minimum
// finite entry from every finite entry in that row/column, accumulating
// the total subtracted
// as a lower-bound contribution. markUsed commits an edge by marking its
// row, column, and reverse entry absent, which both removes the edge from
// future consideration and prevents an immediate return along it.
//
// These two functions are the only place the reduction bound's arithmetic
// lives; bblc.go calls them while tracing a node's matrix on demand.
package tsp

// reduce applies row reduction then column reduction to M in place and
// returns the total amount subtracted (the reduction cost contributed by
// this pass). Absent entries (Absent sentinel) are treated as infinity and
// never participate in a minimum or a subtraction.
//
// Complexity: O(n^2).
func reduce(m *CostMatrix) int {
	n := m.N()
	total := 0

	for i := 0; i < n; i++ {
		min := -1
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if v < 0 {
				continue
			}
			if min < 0 || v < min {
				min = v
			}
		}
		if min > 0 {
			for j := 0; j < n; j++ {
				v := m.At(i, j)
				if v >= 0 {
					_ = m.Set(i, j, v-min)
				}
			}
			total += min
		}
	}

	for j := 0; j < n; j++ {
		min := -1
		for i := 0; i < n; i++ {
			v := m.At(i, j)
			if v < 0 {
				continue
			}
			if min < 0 || v < min {
				min = v
			}
		}
		if min > 0 {
			for i := 0; i < n; i++ {
				v := m.At(i, j)
				if v >= 0 {
					_ = m.Set(i, j, v-min)
				}
			}
			total += min
		}
	}

	return total
}

// markUsed commits edge from->to: row `from` and column `to` become
// entirely absent, and the reverse entry M[to][from] is set absent to
// forbid an immediate return.
//
// Complexity: O(n).
func markUsed(m *CostMatrix, from, to int) {
	n := m.N()
	for j := 0; j < n; j++ {
		_ = m.Set(from, j, Absent)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, to, Absent)
	}
	_ = m.Set(to, from, Absent)
}
