package tsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTestMatrix is the internal (whitebox) counterpart of testdata_test.go's
// mustMatrix, for tests that need access to unexported functions.
func buildTestMatrix(t *testing.T, rows [][]int) *CostMatrix {
	t.Helper()
	n := len(rows)
	m, err := NewCostMatrix(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}
	return m
}

func TestReduce_SubtractsRowAndColumnMinima(t *testing.T) {
	m := buildTestMatrix(t, [][]int{
		{-1, 10, 15, 20},
		{10, -1, 35, 25},
		{15, 35, -1, 30},
		{20, 25, 30, -1},
	})
	cost := reduce(m)
	require.Greater(t, cost, 0)

	// Every row and every column must now have at least one zero entry
	// among its present edges (the reduction invariant).
	for i := 0; i < 4; i++ {
		rowHasZero := false
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			if m.At(i, j) == 0 {
				rowHasZero = true
			}
			require.GreaterOrEqual(t, m.At(i, j), 0)
		}
		require.True(t, rowHasZero, "row %d must contain a zero after reduction", i)
	}
	for j := 0; j < 4; j++ {
		colHasZero := false
		for i := 0; i < 4; i++ {
			if i != j && m.At(i, j) == 0 {
				colHasZero = true
			}
		}
		require.True(t, colHasZero, "column %d must contain a zero after reduction", j)
	}
}

func TestMarkUsed_ClosesRowColumnAndReverse(t *testing.T) {
	m := buildTestMatrix(t, [][]int{
		{-1, 5, 10},
		{6, -1, 2},
		{3, 7, -1},
	})
	markUsed(m, 0, 1)

	for j := 0; j < 3; j++ {
		if j != 0 {
			require.Equal(t, Absent, m.At(0, j), "row 0 must be fully closed")
		}
	}
	for i := 0; i < 3; i++ {
		if i != 1 {
			require.Equal(t, Absent, m.At(i, 1), "column 1 must be fully closed")
		}
	}
	require.Equal(t, Absent, m.At(1, 0), "reverse edge must be forbidden")
}

func TestSwapDelta_MatchesFreshRecomputation(t *testing.T) {
	m := buildTestMatrix(t, [][]int{
		{-1, 10, 15, 20},
		{10, -1, 35, 25},
		{15, 35, -1, 30},
		{20, 25, 30, -1},
	})
	tour := []int{0, 1, 2, 3}
	n := 4

	before, ok := SolutionCost(m, CloseTour(tour))
	require.True(t, ok)

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			delta, ok := swapDelta(tour, m, n, i, j)
			require.True(t, ok)

			swapped := CopyPath(tour)
			swapped[i], swapped[j] = swapped[j], swapped[i]
			after, ok := SolutionCost(m, CloseTour(swapped))
			require.True(t, ok)

			require.Equal(t, after-before, delta, "swap(%d,%d) delta mismatch", i, j)
		}
	}
}

func TestSwapDelta_RejectsAbsentEdge(t *testing.T) {
	m := buildTestMatrix(t, [][]int{
		{-1, 5, 10},
		{6, -1, -1},
		{3, 7, -1},
	})
	_, ok := swapDelta([]int{0, 1, 2}, m, 3, 0, 1)
	require.False(t, ok)
}

func TestBuildChromosome_CachedCostsSumToTrueCost(t *testing.T) {
	m := buildTestMatrix(t, [][]int{
		{-1, 10, 15, 20},
		{10, -1, 35, 25},
		{15, 35, -1, 30},
		{20, 25, 30, -1},
	})
	perm := []int{0, 1, 2, 3}
	c, ok := buildChromosome(perm, 2, m)
	require.True(t, ok)

	want, ok := SolutionCost(m, c.tour())
	require.True(t, ok)
	require.Equal(t, want, c.cost())
}

// directedCostMatrix builds a complete n-vertex matrix with a distinct,
// asymmetric cost for every ordered pair, so no swap in the tests below
// can ever hit an absent edge and every edge cost is independently
// identifiable.
func directedCostMatrix(t *testing.T, n int) *CostMatrix {
	t.Helper()
	m, err := NewCostMatrix(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NoError(t, m.Set(i, j, 10*(i+1)+(j+1)))
		}
	}
	return m
}

// requireChromosomeCostMatchesTour asserts c's four cached cost fields
// still sum to a fresh re-summation of its tour - the invariant applySwap
// must preserve via 4-edge local accounting rather than a rebuild.
func requireChromosomeCostMatchesTour(t *testing.T, m *CostMatrix, c *chromosome) {
	t.Helper()
	want, ok := SolutionCost(m, c.tour())
	require.True(t, ok, "swapped chromosome must still describe a fully-edged tour")
	require.Equal(t, want, c.cost())
}

// TestApplySwap_EveryLocusPairCase exercises applySwap at every reachable
// (locus(i), locus(j)) combination - v*-vs-first-allele, v*-vs-second-
// allele, first-allele-vs-first-allele, first-allele-vs-second-allele,
// second-allele-vs-second-allele - crossed with the allele-boundary
// special cases (head, tail, adjacent, wrap-around, and a plain interior
// position for the cases that have one).
func TestApplySwap_EveryLocusPairCase(t *testing.T) {
	m := directedCostMatrix(t, 7)
	// n=7, split=4: v*=0, fa=[1,2,3] (head=1, mid=2, tail=3),
	// sa=[4,5,6] (head=4, mid=5, tail=6=n-1).
	perm := []int{0, 1, 2, 3, 4, 5, 6}

	cases := []struct {
		name string
		i, j int
	}{
		{"vStar_fa_head", 0, 1},
		{"vStar_fa_mid", 0, 2},
		{"vStar_fa_tail", 0, 3},
		{"vStar_sa_head", 0, 4},
		{"vStar_sa_mid", 0, 5},
		{"vStar_sa_tail_wrapAdjacent", 0, 6},
		{"fa_fa_adjacent_headMid", 1, 2},
		{"fa_fa_nonadjacent_headTail", 1, 3},
		{"fa_fa_adjacent_midTail", 2, 3},
		{"fa_sa_boundary_tailHead_adjacent", 3, 4},
		{"fa_sa_interior_nonboundary", 2, 5},
		{"fa_sa_headTail", 1, 6},
		{"sa_sa_adjacent_headMid", 4, 5},
		{"sa_sa_adjacent_midTail", 5, 6},
		{"sa_sa_nonadjacent_headTail", 4, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := buildChromosome(perm, 4, m)
			require.True(t, ok)

			mutated, ok := c.applySwap(tc.i, tc.j, m)
			require.True(t, ok, "every edge is present in a complete matrix")
			requireChromosomeCostMatchesTour(t, m, mutated)

			// The swap must actually have exchanged the two vertices.
			before, after := c.tour(), mutated.tour()
			require.Equal(t, before[tc.i], after[tc.j])
			require.Equal(t, before[tc.j], after[tc.i])
		})
	}
}

// TestApplySwap_RejectsAbsentEdge mirrors TestSwapDelta_RejectsAbsentEdge:
// a swap that would touch a missing edge must report infeasibility rather
// than return a chromosome with a broken cost accounting.
func TestApplySwap_RejectsAbsentEdge(t *testing.T) {
	m := directedCostMatrix(t, 5)
	// Original tour 0->1->2->3->4->0 never uses edge 3->2, so building the
	// chromosome still succeeds once that single directed edge is removed.
	require.NoError(t, m.Set(3, 2, Absent))

	c, ok := buildChromosome([]int{0, 1, 2, 3, 4}, 2, m)
	require.True(t, ok)

	// Swapping ring positions 1 (fa[0]=1) and 3 (sa[1]=3) makes position 1's
	// edge become 3->2, which is now absent.
	_, ok = c.applySwap(1, 3, m)
	require.False(t, ok, "swap touching the now-absent 3->2 edge must fail")
}

// TestApplySwap_RejectsEqualOrOutOfRangePositions checks applySwap's own
// bounds guard, independent of matrix feasibility.
func TestApplySwap_RejectsEqualOrOutOfRangePositions(t *testing.T) {
	m := directedCostMatrix(t, 4)
	c, ok := buildChromosome([]int{0, 1, 2, 3}, 2, m)
	require.True(t, ok)

	_, ok = c.applySwap(1, 1, m)
	require.False(t, ok)
	_, ok = c.applySwap(-1, 2, m)
	require.False(t, ok)
	_, ok = c.applySwap(0, 4, m)
	require.False(t, ok)
}

// TestApplySwap_FuzzRandomPositions randomly selects many swap-position
// pairs across chromosomes of varying allele-length shape and checks the
// cached-cost invariant holds whenever applySwap reports success.
func TestApplySwap_FuzzRandomPositions(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		n := 5 + r.Intn(6) // n in [5,10]
		m := directedCostMatrix(t, n)

		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		r.Shuffle(n, func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

		split := 2 + r.Intn(n-2) // both alleles non-empty
		c, ok := buildChromosome(perm, split, m)
		require.True(t, ok)

		i := r.Intn(n)
		j := r.Intn(n)
		if i == j {
			continue
		}
		mutated, ok := c.applySwap(i, j, m)
		require.True(t, ok, "complete matrix: every swap must be feasible")
		requireChromosomeCostMatchesTour(t, m, mutated)
	}
}

func TestTryRecombine_FailsWhenAllelesShareVertex(t *testing.T) {
	m := buildTestMatrix(t, [][]int{
		{-1, 10, 15, 20},
		{10, -1, 35, 25},
		{15, 35, -1, 30},
		{20, 25, 30, -1},
	})
	a, ok := buildChromosome([]int{0, 1, 2, 3}, 2, m)
	require.True(t, ok)
	b, ok := buildChromosome([]int{0, 2, 3, 1}, 2, m)
	require.True(t, ok)

	// a's first allele is [1] and b's second allele is [3,1]: neither holds
	// v*=0, but both hold vertex 1, so the splice must be rejected rather
	// than produce a chromosome with a repeated vertex.
	_, ok = tryRecombine(m, a, b, a.vStar)
	require.False(t, ok, "alleles sharing vertex 1 must not recombine")
}
