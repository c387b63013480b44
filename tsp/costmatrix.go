// Package tsp - CostMatrix, a dense integer distance matrix.
//
// CostMatrix mirrors the storage discipline of a row-major dense matrix
// (flat backing slice, O(1) indexed access) narrowed to this package's
// domain: integer edge costs, with -1 marking an absent edge instead of a
// floating-point infinity. The flat layout keeps every hot search loop
// (Brute Force, Branch & Bound, Tabu Search, Genetic) free of per-cell
// interface dispatch or slice-of-slices indirection.
package tsp

import "fmt"

// Absent is the sentinel edge cost meaning "no edge". Any stored value
// strictly less than zero is treated as absent; -1 is the canonical value
// produced by NewCostMatrix and expected from instance files.
const Absent = -1

// CostMatrix is a square n×n matrix of integer edge costs.
// data is row-major: data[i*n+j] holds the cost of edge i->j.
type CostMatrix struct {
	n    int
	data []int
}

// NewCostMatrix allocates an n×n CostMatrix with every entry set to Absent,
// including the diagonal (callers do not need self-loops; diagonal entries
// are ignored by every algorithm in this package).
//
// Complexity: O(n^2) time and memory.
func NewCostMatrix(n int) (*CostMatrix, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	data := make([]int, n*n)
	for i := range data {
		data[i] = Absent
	}
	return &CostMatrix{n: n, data: data}, nil
}

// N returns the matrix order (vertex count).
func (m *CostMatrix) N() int { return m.n }

// indexOf computes the flat offset for (i,j), or returns ErrDimensionMismatch
// when out of range.
func (m *CostMatrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("tsp: CostMatrix index (%d,%d) out of range [0,%d): %w", i, j, m.n, ErrDimensionMismatch)
	}
	return i*m.n + j, nil
}

// At returns the cost of edge i->j, or Absent if none is set. Panics are
// never used for bad indices; callers that pass out-of-range indices get
// Absent back, a "no panics on user input" discipline worth keeping at the
// one place it would otherwise bite hot loops (At is called from every
// search's innermost iteration).
func (m *CostMatrix) At(i, j int) int {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return Absent
	}
	return m.data[idx]
}

// Set stores the cost of edge i->j. Returns ErrDimensionMismatch for an
// out-of-range index and ErrNegativeWeight for any cost < -1.
func (m *CostMatrix) Set(i, j, cost int) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	if cost < Absent {
		return ErrNegativeWeight
	}
	m.data[idx] = cost
	return nil
}

// edgeExists reports whether edge i->j is present (cost >= 0) and, if so,
// returns its cost. This is the single place every algorithm in this
// package consults the absent-edge convention.
func edgeExists(m *CostMatrix, i, j int) (cost int, ok bool) {
	c := m.At(i, j)
	if c < 0 {
		return 0, false
	}
	return c, true
}

// Clone returns an independent deep copy of m.
func (m *CostMatrix) Clone() *CostMatrix {
	out := &CostMatrix{n: m.n, data: make([]int, len(m.data))}
	copy(out.data, m.data)
	return out
}
