// Package tsp provides Traveling Salesman Problem solvers over integer cost
// matrices, with a consistent API, strict sentinel errors, and deterministic
// behavior wherever the problem domain allows it.
//
// # What & Why
//
// Given an n×n cost matrix where -1 marks an absent edge, tsp computes a
// minimum-cost Hamiltonian cycle (a closed tour) using one of seven
// algorithms (Branch & Bound comes in three traversals, so there are eight
// solver functions), split into three families:
//
//   - Exact: BruteForce, BranchAndBoundLC (least-cost, matrix reduction),
//     BranchAndBoundBFS, BranchAndBoundDFS.
//   - Constructive/baseline: NearestNeighbor, Random.
//   - Metaheuristic: TabuSearch, Genetic.
//
// # Algorithms & Complexity
//
//	BruteForce              exact, exponential, cost-pruned enumeration.
//	NearestNeighbor          O(n^2) per start, branches on tied edges.
//	Random                   time-bounded sampler, no optimality guarantee.
//	BranchAndBoundLC         exact, best-first, row/col matrix reduction bound.
//	BranchAndBoundBFS        exact, FIFO frontier, branch-level pruning.
//	BranchAndBoundDFS        exact, LIFO frontier, branch-level pruning.
//	TabuSearch               metaheuristic, O(1) swap-delta, short-term memory.
//	Genetic                  metaheuristic, two-allele chromosome, population.
//
// # Determinism
//
// BruteForce, the three Branch & Bound variants, and NearestNeighbor are
// deterministic given identical input: traversal order does not affect the
// returned cost (only which optimal tour, among ties, is reported).
// Random and Genetic draw one seed from a non-deterministic entropy source
// at the start of each run (see rng.go); two invocations on the same input
// may return different tours or costs.
//
// # Input Requirements
//
// A CostMatrix must be square, n>=1. Diagonal entries are ignored. -1
// denotes "no edge"; all other entries must be >= 0. GraphInfo documents
// whether the matrix is symmetric and/or complete ("full"); when both are
// true, every algorithm restricts starting-vertex enumeration to {0}
// (rotational symmetry makes other starts redundant).
//
// # Results
//
//	type Solution struct {
//	    Path []int // len == N+1, Path[0] == Path[N], each vertex in [0,N) once
//	    Cost int
//	}
//
// # Errors (strict sentinels)
//
//	ErrNoPath, ErrInvalidParam, ErrDimensionMismatch, ErrNegativeWeight.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
package tsp
