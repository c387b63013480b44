package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/tsp"
)

// mustMatrix builds a *tsp.CostMatrix from a dense int grid, using tsp.Absent
// wherever the grid holds -1. t is used only to fail fast on a malformed
// fixture, never to skip.
func mustMatrix(t *testing.T, rows [][]int) *tsp.CostMatrix {
	t.Helper()
	n := len(rows)
	m, err := tsp.NewCostMatrix(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.Len(t, rows[i], n, "row %d must have length %d", i, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}
	return m
}

// scenarioA is Scenario A: symmetric, N=4, optimum cost 80.
func scenarioA(t *testing.T) *tsp.CostMatrix {
	t.Helper()
	return mustMatrix(t, [][]int{
		{-1, 10, 15, 20},
		{10, -1, 35, 25},
		{15, 35, -1, 30},
		{20, 25, 30, -1},
	})
}

// scenarioB is Scenario B: asymmetric, N=3, optimum cost 10.
func scenarioB(t *testing.T) *tsp.CostMatrix {
	t.Helper()
	return mustMatrix(t, [][]int{
		{-1, 5, 10},
		{6, -1, 2},
		{3, 7, -1},
	})
}

// scenarioC is Scenario C: N=3, no Hamiltonian cycle (vertex 2 has
// no outgoing edge).
func scenarioC(t *testing.T) *tsp.CostMatrix {
	t.Helper()
	return mustMatrix(t, [][]int{
		{-1, 5, 10},
		{6, -1, 2},
		{-1, -1, -1},
	})
}

// scenarioD is Scenario D: N=1.
func scenarioD(t *testing.T) *tsp.CostMatrix {
	t.Helper()
	return mustMatrix(t, [][]int{{-1}})
}

var fullGraph = tsp.GraphInfo{Symmetric: true, Full: true}
var asymGraph = tsp.GraphInfo{Symmetric: false, Full: true}
