package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/tsp"
)

// requireValidTour asserts that sol is a well-formed closed tour over an
// n-vertex matrix m and that its cost matches a fresh re-summation.
func requireValidTour(t *testing.T, m *tsp.CostMatrix, sol tsp.Solution, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(sol.Path, n))
	cost, ok := tsp.SolutionCost(m, sol.Path)
	require.True(t, ok, "every edge along the returned path must be present")
	require.Equal(t, sol.Cost, cost, "Solution.Cost must equal the fresh re-summation of Path")
}

// exactAlgorithms lists every algorithm expected to agree on the optimum
// for any feasible instance.
var exactAlgorithms = []struct {
	name string
	run  func(tsp.Instance) (tsp.Solution, error)
}{
	{"BruteForce", tsp.BruteForce},
	{"BranchAndBoundLC", tsp.BranchAndBoundLC},
	{"BranchAndBoundBFS", tsp.BranchAndBoundBFS},
	{"BranchAndBoundDFS", tsp.BranchAndBoundDFS},
}

func TestScenarioA_ExactAlgorithmsAgreeOnOptimum(t *testing.T) {
	m := scenarioA(t)
	inst := tsp.Instance{Matrix: m, Info: fullGraph}

	for _, alg := range exactAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			sol, err := alg.run(inst)
			require.NoError(t, err)
			requireValidTour(t, m, sol, 4)
			require.Equal(t, 80, sol.Cost)
		})
	}
}

func TestScenarioA_NearestNeighborFromZero(t *testing.T) {
	m := scenarioA(t)
	inst := tsp.Instance{Matrix: m, Info: tsp.GraphInfo{Symmetric: true, Full: true}}
	sol, err := tsp.NearestNeighbor(inst)
	require.NoError(t, err)
	requireValidTour(t, m, sol, 4)
	require.Equal(t, 80, sol.Cost)
}

func TestScenarioB_AsymmetricExactAlgorithmsAgree(t *testing.T) {
	m := scenarioB(t)
	inst := tsp.Instance{Matrix: m, Info: asymGraph}

	for _, alg := range exactAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			sol, err := alg.run(inst)
			require.NoError(t, err)
			requireValidTour(t, m, sol, 3)
			require.Equal(t, 10, sol.Cost)
		})
	}
}

func TestScenarioC_NoTourReturnsErrNoPath(t *testing.T) {
	m := scenarioC(t)
	inst := tsp.Instance{Matrix: m, Info: asymGraph}

	for _, alg := range exactAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			_, err := alg.run(inst)
			require.ErrorIs(t, err, tsp.ErrNoPath)
		})
	}

	t.Run("NearestNeighbor", func(t *testing.T) {
		_, err := tsp.NearestNeighbor(inst)
		require.ErrorIs(t, err, tsp.ErrNoPath)
	})
}

func TestScenarioD_SingleVertex(t *testing.T) {
	m := scenarioD(t)
	inst := tsp.Instance{Matrix: m, Info: tsp.GraphInfo{Symmetric: true, Full: true}}

	algs := append([]struct {
		name string
		run  func(tsp.Instance) (tsp.Solution, error)
	}{{"NearestNeighbor", tsp.NearestNeighbor}}, exactAlgorithms...)

	for _, alg := range algs {
		t.Run(alg.name, func(t *testing.T) {
			sol, err := alg.run(inst)
			require.NoError(t, err)
			require.Equal(t, []int{0, 0}, sol.Path)
			require.Equal(t, 0, sol.Cost)
		})
	}
}

func TestScenarioE_TabuSearchReachesOptimum(t *testing.T) {
	m := scenarioA(t)
	inst := tsp.Instance{
		Matrix: m,
		Info:   fullGraph,
		Params: tsp.Params{TabuItr: 16, TabuMaxItrNoImprove: 16, TabuTenure: 3},
	}
	sol, err := tsp.TabuSearch(inst)
	require.NoError(t, err)
	requireValidTour(t, m, sol, 4)
	require.Equal(t, 80, sol.Cost)
}

func TestScenarioF_GeneticNeverWorsensNNSeed(t *testing.T) {
	m := scenarioA(t)
	nnInst := tsp.Instance{Matrix: m, Info: fullGraph}
	nnSol, err := tsp.NearestNeighbor(nnInst)
	require.NoError(t, err)

	inst := tsp.Instance{
		Matrix: m,
		Info:   fullGraph,
		Params: tsp.Params{
			GenItr:                1,
			GenPopulationSize:     10,
			GenChildrenPerItr:     10,
			GenMaxChildrenPerPair: 2,
			GenMutationsPer1000:   0,
		},
	}
	sol, err := tsp.Genetic(inst)
	require.NoError(t, err)
	requireValidTour(t, m, sol, 4)
	require.LessOrEqual(t, sol.Cost, nnSol.Cost)
}
