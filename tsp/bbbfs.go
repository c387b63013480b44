// Package tsp - Branch & Bound, breadth-first traversal.
//
// The frontier is a FIFO queue of bbNode; the incumbent is seeded from
// NearestNeighbor before the search starts.
package tsp

// BranchAndBoundBFS computes the exact minimum-cost Hamiltonian cycle by
// breadth-first Branch & Bound with branch-level pruning (no reduction
// bound).
//
// Edge cases: n==1 returns Solution{[0,0], 0} directly.
func BranchAndBoundBFS(inst Instance) (Solution, error) {
	n, err := validateMatrix(inst.Matrix)
	if err != nil {
		return Solution{}, err
	}
	if n == 1 {
		return Solution{Path: []int{0, 0}, Cost: 0}, nil
	}

	var bestPath []int
	bestCost := 0
	found := false
	if seed, err := NearestNeighbor(inst); err == nil {
		bestPath, bestCost, found = seed.Path, seed.Cost, true
	}

	var queue []*bbNode
	for _, start := range startVertices(n, inst.Info) {
		mask := make([]bool, n)
		mask[start] = true
		queue = append(queue, &bbNode{usedMask: mask, path: []int{start}, cost: 0})
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		children, closed, closedPath, closedCost := bbExpand(inst.Matrix, n, node, found, bestCost)
		if closed {
			if !found || closedCost < bestCost {
				bestPath, bestCost, found = closedPath, closedCost, true
			}
			continue
		}
		queue = append(queue, children...)
	}

	if !found {
		return Solution{}, ErrNoPath
	}
	return Solution{Path: bestPath, Cost: bestCost}, nil
}
