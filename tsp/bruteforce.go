// Package tsp - Brute Force (exact optimum by enumeration with cost pruning).
//
// BruteForce explores a DFS frontier of partial paths rooted at each
// candidate starting vertex, closing the cycle once a path has visited
// every vertex. It is the simplest of the exact solvers: no lower bound is
// computed, only a running incumbent cost prunes partial paths that can no
// longer improve on it. Structured as a dedicated engine (no closures),
// mirroring the shared-state discipline used by the Branch & Bound engines.
package tsp

// bfEngine holds the search state for one BruteForce invocation.
type bfEngine struct {
	n       int
	m       *CostMatrix
	visited []bool
	path    []int

	bestPath []int
	bestCost int
	found    bool
}

// dfs extends the current path by one more feasible edge from last, or
// closes the cycle back to start if every vertex has been visited.
//
// Pruning: a partial path whose accumulated cost already meets or exceeds
// the incumbent is abandoned unconditionally, since the bound (cost so far
// can only grow) is trivially admissible.
func (e *bfEngine) dfs(start, last, depth, costSoFar int) {
	if e.found && costSoFar >= e.bestCost {
		return
	}
	if depth == e.n {
		c, ok := edgeExists(e.m, last, start)
		if !ok {
			return
		}
		total := costSoFar + c
		if !e.found || total < e.bestCost {
			e.bestCost = total
			e.bestPath = append(e.bestPath[:0], e.path[:depth]...)
			e.bestPath = append(e.bestPath, start)
			e.found = true
		}
		return
	}
	for v := 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		c, ok := edgeExists(e.m, last, v)
		if !ok {
			continue
		}
		if e.found && costSoFar+c >= e.bestCost {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(start, v, depth+1, costSoFar+c)
		e.visited[v] = false
	}
}

// BruteForce computes the exact minimum-cost Hamiltonian cycle by
// exhaustive enumeration. Deterministic given identical input.
//
// Edge cases: n==1 returns Solution{[0,0], 0} directly.
//
// Complexity: worst case exponential; practical speed comes from pruning.
func BruteForce(inst Instance) (Solution, error) {
	n, err := validateMatrix(inst.Matrix)
	if err != nil {
		return Solution{}, err
	}
	if n == 1 {
		return Solution{Path: []int{0, 0}, Cost: 0}, nil
	}

	e := &bfEngine{
		n:        n,
		m:        inst.Matrix,
		visited:  make([]bool, n),
		path:     make([]int, n),
		bestPath: make([]int, 0, n+1),
	}

	for _, start := range startVertices(n, inst.Info) {
		e.visited[start] = true
		e.path[0] = start
		e.dfs(start, start, 1, 0)
		e.visited[start] = false
	}

	if !e.found {
		return Solution{}, ErrNoPath
	}
	return Solution{Path: e.bestPath, Cost: e.bestCost}, nil
}
