// Package tsp - Nearest Neighbor (fast constructive heuristic).
//
// NearestNeighbor is also used internally to seed upper bounds for
// BranchAndBoundLC and the initial chromosome population for Genetic (see
// BranchAndBoundLC in bblc.go and Genetic/seedPopulation in genetic.go).
//
// At each step the frontier extends by the unused neighbor(s) of minimum
// outgoing cost; ties branch (every tied neighbor is explored) rather than
// picking one arbitrarily, so the result doesn't depend on vertex-scan
// order when several neighbors are equally close.
package tsp

// nnEngine holds the search state for one NearestNeighbor invocation.
type nnEngine struct {
	n       int
	m       *CostMatrix
	visited []bool
	path    []int
	optimal *Solution

	bestPath []int
	bestCost int
	found    bool
}

// extend advances one step from last at depth, branching over every
// tied-minimum-cost unused neighbor.
func (e *nnEngine) extend(start, last, depth int) {
	if depth == e.n {
		c, ok := edgeExists(e.m, last, start)
		if !ok {
			return
		}
		total := e.pathCost(depth) + c
		if !e.found || total < e.bestCost {
			e.bestCost = total
			e.bestPath = append(e.bestPath[:0], e.path[:depth]...)
			e.bestPath = append(e.bestPath, start)
			e.found = true
		}
		return
	}

	min := 0
	haveMin := false
	for v := 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		c, ok := edgeExists(e.m, last, v)
		if !ok {
			continue
		}
		if !haveMin || c < min {
			min = c
			haveMin = true
		}
	}
	if !haveMin {
		return // last has no remaining outgoing feasible edge
	}

	for v := 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		c, ok := edgeExists(e.m, last, v)
		if !ok || c != min {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.extend(start, v, depth+1)
		e.visited[v] = false

		// Early exit: if an optimal cost is known and we already matched it,
		// no further branch can improve on it.
		if e.optimal != nil && e.found && e.bestCost == e.optimal.Cost {
			return
		}
	}
}

// pathCost sums edge costs of e.path[0:depth] (the partial path built so
// far, before the closing edge); recomputed rather than threaded through
// recursion to keep extend's signature small.
func (e *nnEngine) pathCost(depth int) int {
	sum := 0
	for i := 0; i+1 < depth; i++ {
		c, _ := edgeExists(e.m, e.path[i], e.path[i+1])
		sum += c
	}
	return sum
}

// NearestNeighbor runs the constructive nearest-neighbor heuristic from
// every required starting vertex (per GraphInfo) and returns the best
// closed tour found. inst.Optimal, if supplied, enables an early exit once
// a tour matching that cost is found; algorithms must not rely on it for
// correctness.
func NearestNeighbor(inst Instance) (Solution, error) {
	n, err := validateMatrix(inst.Matrix)
	if err != nil {
		return Solution{}, err
	}
	if n == 1 {
		return Solution{Path: []int{0, 0}, Cost: 0}, nil
	}

	e := &nnEngine{
		n:        n,
		m:        inst.Matrix,
		visited:  make([]bool, n),
		path:     make([]int, n),
		optimal:  inst.Optimal,
		bestPath: make([]int, 0, n+1),
	}

	for _, start := range startVertices(n, inst.Info) {
		e.visited[start] = true
		e.path[0] = start
		e.extend(start, start, 1)
		e.visited[start] = false
		if e.optimal != nil && e.found && e.bestCost == e.optimal.Cost {
			break
		}
	}

	if !e.found {
		return Solution{}, ErrNoPath
	}
	return Solution{Path: e.bestPath, Cost: e.bestCost}, nil
}
