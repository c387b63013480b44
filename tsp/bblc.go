// Package tsp - Branch & Bound, least-cost (best-first) traversal.
//
// BranchAndBoundLC explores partial tours in strictly ascending
// lower-bound order via a priority queue. A node owns
// only its committed path and its lower bound; the reduced matrix a node
// implies is never stored, it is traced on demand by replaying the path's
// committed edges against the once-reduced root matrix (reduce, markUsed
// in reduction.go). The incumbent upper bound is seeded from
// NearestNeighbor so early nodes can be pruned before any leaf is reached.
package tsp

import "container/heap"

// lcNode is one entry of the best-first frontier: a committed partial
// path (first element is the start vertex) and its admissible lower bound.
type lcNode struct {
	path       []int
	lowerBound int
	seq        int // insertion order, used only to break lowerBound ties FIFO
}

type lcQueue []*lcNode

func (q lcQueue) Len() int { return len(q) }
func (q lcQueue) Less(i, j int) bool {
	if q[i].lowerBound != q[j].lowerBound {
		return q[i].lowerBound < q[j].lowerBound
	}
	return q[i].seq < q[j].seq
}
func (q lcQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *lcQueue) Push(x any)   { *q = append(*q, x.(*lcNode)) }
func (q *lcQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// lcEngine holds the shared state of one BranchAndBoundLC run: the root
// matrix (original costs, for edge-cost lookups and the closing-edge
// check), the once-reduced root matrix and its reduction cost (cached so
// every node's trace starts from the same baseline instead of re-reducing
// the unreduced root each time), and the running incumbent.
type lcEngine struct {
	n             int
	root          *CostMatrix
	rootReduced   *CostMatrix
	rootReduceCst int

	bestPath []int
	bestCost int
	found    bool
}

// traceMatrix replays path's committed edges against a fresh clone of the
// cached root-reduced matrix, returning the resulting matrix and the total
// reduction cost accumulated while committing those edges (not including
// rootReduceCst, which the caller already holds separately).
func (e *lcEngine) traceMatrix(path []int) (*CostMatrix, int) {
	m := e.rootReduced.Clone()
	extra := 0
	for i := 0; i+1 < len(path); i++ {
		markUsed(m, path[i], path[i+1])
		extra += reduce(m)
	}
	return m, extra
}

// pathOriginalCost sums the ORIGINAL (unreduced) cost of every committed
// edge in path; it gives the true cost of a complete tour once the closing
// edge is added.
func (e *lcEngine) pathOriginalCost(path []int) int {
	sum := 0
	for i := 0; i+1 < len(path); i++ {
		c, _ := edgeExists(e.root, path[i], path[i+1])
		sum += c
	}
	return sum
}

// BranchAndBoundLC computes the exact minimum-cost Hamiltonian cycle via
// best-first matrix-reduction Branch & Bound.
//
// Edge cases: n==1 returns Solution{[0,0], 0} directly.
func BranchAndBoundLC(inst Instance) (Solution, error) {
	n, err := validateMatrix(inst.Matrix)
	if err != nil {
		return Solution{}, err
	}
	if n == 1 {
		return Solution{Path: []int{0, 0}, Cost: 0}, nil
	}

	e := &lcEngine{n: n, root: inst.Matrix}
	e.rootReduced = inst.Matrix.Clone()
	e.rootReduceCst = reduce(e.rootReduced)

	if seed, err := NearestNeighbor(inst); err == nil {
		e.bestPath = seed.Path
		e.bestCost = seed.Cost
		e.found = true
	}

	q := &lcQueue{}
	heap.Init(q)
	seq := 0
	for _, start := range startVertices(n, inst.Info) {
		heap.Push(q, &lcNode{path: []int{start}, lowerBound: e.rootReduceCst, seq: seq})
		seq++
	}

	for q.Len() > 0 {
		node := heap.Pop(q).(*lcNode)

		// Best-first order means every remaining node's bound is >= this
		// one's; once this node cannot beat the incumbent, none can.
		if e.found && node.lowerBound >= e.bestCost {
			break
		}

		last := node.path[len(node.path)-1]

		if len(node.path) == n {
			start := node.path[0]
			c, ok := edgeExists(e.root, last, start)
			if !ok {
				continue
			}
			total := e.pathOriginalCost(node.path) + c
			if !e.found || total < e.bestCost {
				e.bestCost = total
				e.bestPath = append(append([]int{}, node.path...), start)
				e.found = true
			}
			continue
		}

		m, _ := e.traceMatrix(node.path) // reduction cost is already folded into node.lowerBound

		usedMask := make([]bool, n)
		for _, v := range node.path {
			usedMask[v] = true
		}

		for v := 0; v < n; v++ {
			if usedMask[v] {
				continue
			}
			if _, ok := edgeExists(m, last, v); !ok {
				continue
			}
			child := m.Clone()
			markUsed(child, last, v)
			deltaReduce := reduce(child)

			// The bound grows by the edge's cost in the parent's REDUCED
			// matrix: the original cost would count the rows/columns already
			// subtracted into node.lowerBound a second time.
			reducedCost, _ := edgeExists(m, last, v)
			childLB := node.lowerBound + reducedCost + deltaReduce
			if e.found && childLB >= e.bestCost {
				continue
			}

			childPath := append(append([]int{}, node.path...), v)
			heap.Push(q, &lcNode{path: childPath, lowerBound: childLB, seq: seq})
			seq++
		}
	}

	if !e.found {
		return Solution{}, ErrNoPath
	}
	return Solution{Path: e.bestPath, Cost: e.bestCost}, nil
}
