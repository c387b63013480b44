// Package tsp - shared node shape for the BFS and DFS Branch & Bound
// traversals. Unlike BranchAndBoundLC, these two variants use
// no reduction bound: a node carries its own used-vertex mask and
// cost-so-far, and children are pruned only by comparing cost-so-far plus
// edge cost against the incumbent ("branch-level pruning").
package tsp

// bbNode is one frontier entry shared by BranchAndBoundBFS and
// BranchAndBoundDFS.
type bbNode struct {
	usedMask []bool
	path     []int
	cost     int
}

// bbExpand appends every feasible, unused-vertex child of node that cannot
// already be pruned against incumbent (bestCost, found), or, if node's path
// already spans all n vertices, checks whether closing the cycle beats the
// incumbent and reports the resulting solution via the return values.
//
// This single helper is shared verbatim by the BFS and DFS engines; only
// the frontier's push/pop discipline (FIFO vs LIFO) differs between them.
func bbExpand(m *CostMatrix, n int, node *bbNode, found bool, bestCost int) (children []*bbNode, closed bool, closedPath []int, closedCost int) {
	last := node.path[len(node.path)-1]

	if len(node.path) == n {
		start := node.path[0]
		c, ok := edgeExists(m, last, start)
		if !ok {
			return nil, false, nil, 0
		}
		total := node.cost + c
		if !found || total < bestCost {
			return nil, true, append(append([]int{}, node.path...), start), total
		}
		return nil, false, nil, 0
	}

	for v := 0; v < n; v++ {
		if node.usedMask[v] {
			continue
		}
		c, ok := edgeExists(m, last, v)
		if !ok {
			continue
		}
		childCost := node.cost + c
		if found && childCost >= bestCost {
			continue
		}
		mask := append([]bool{}, node.usedMask...)
		mask[v] = true
		children = append(children, &bbNode{
			usedMask: mask,
			path:     append(append([]int{}, node.path...), v),
			cost:     childCost,
		})
	}
	return children, false, nil, 0
}
