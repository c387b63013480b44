// Package tsp - Branch & Bound, depth-first traversal.
//
// The frontier is a LIFO stack of bbNode; the incumbent starts unfound
// (no NN seed) and is only set once a first feasible cycle is closed.
package tsp

// BranchAndBoundDFS computes the exact minimum-cost Hamiltonian cycle by
// depth-first Branch & Bound with branch-level pruning (no reduction
// bound).
//
// Edge cases: n==1 returns Solution{[0,0], 0} directly.
func BranchAndBoundDFS(inst Instance) (Solution, error) {
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

	var stack []*bbNode
	for _, start := range startVertices(n, inst.Info) {
		mask := make([]bool, n)
		mask[start] = true
		stack = append(stack, &bbNode{usedMask: mask, path: []int{start}, cost: 0})
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, closed, closedPath, closedCost := bbExpand(inst.Matrix, n, node, found, bestCost)
		if closed {
			if !found || closedCost < bestCost {
				bestPath, bestCost, found = closedPath, closedCost, true
			}
			continue
		}
		stack = append(stack, children...)
	}

	if !found {
		return Solution{}, ErrNoPath
	}
	return Solution{Path: bestPath, Cost: bestCost}, nil
}
