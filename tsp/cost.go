// Package tsp - cost utilities shared by every solver.
//
// SolutionCost sums the edge costs along a closed tour. It is allocation-free
// and returns ok=false (not an error) when an edge is absent. The solvers'
// own hot loops (Tabu Search's swapDelta, Genetic's recombination and swap
// accounting) check single edges with edgeExists instead of calling it.
package tsp

// SolutionCost returns the total cost of the closed tour path over m, and
// ok=false if any consecutive edge is absent. path is assumed to already
// satisfy ValidateTour; callers that skip validation get whatever At(i,j)
// defaults to for bad indices (Absent, i.e. ok=false).
//
// Complexity: O(n) time, O(1) space.
func SolutionCost(m *CostMatrix, path []int) (cost int, ok bool) {
	if m == nil || len(path) < 2 {
		return 0, false
	}
	for i := 0; i < len(path)-1; i++ {
		c, present := edgeExists(m, path[i], path[i+1])
		if !present {
			return 0, false
		}
		cost += c
	}
	return cost, true
}
