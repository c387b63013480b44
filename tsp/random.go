// Package tsp - Random (time-bounded probabilistic baseline).
//
// Random repeatedly constructs a random Hamiltonian cycle: a uniform random
// start, then at each step a uniform random not-yet-used vertex, retried up
// to randomRetryBound times per step before abandoning that attempt. The
// best feasible closed tour found before the deadline is returned.
package tsp

import "time"

// randomRetryBound caps per-step retries when the sampled next vertex has
// no feasible edge from the current one.
const randomRetryBound = 10000

// randomAttempt builds one candidate closed tour by uniform random sampling
// without replacement, retrying an infeasible step up to randomRetryBound
// times before abandoning the whole attempt.
func randomAttempt(m *CostMatrix, n int, r randSource) (Solution, bool) {
	visited := make([]bool, n)
	path := make([]int, 0, n+1)

	start := r.Intn(n)
	visited[start] = true
	path = append(path, start)

	last := start
	cost := 0
	for len(path) < n {
		next, ok := sampleUnusedFeasible(m, n, last, visited, r)
		if !ok {
			return Solution{}, false
		}
		c, _ := edgeExists(m, last, next)
		cost += c
		visited[next] = true
		path = append(path, next)
		last = next
	}

	closing, ok := edgeExists(m, last, start)
	if !ok {
		return Solution{}, false
	}
	cost += closing
	path = append(path, start)
	return Solution{Path: path, Cost: cost}, true
}

// sampleUnusedFeasible draws a uniform random unused vertex with a feasible
// edge from last, retrying up to randomRetryBound times.
func sampleUnusedFeasible(m *CostMatrix, n, last int, visited []bool, r randSource) (int, bool) {
	for attempt := 0; attempt < randomRetryBound; attempt++ {
		v := r.Intn(n)
		if visited[v] {
			continue
		}
		if _, ok := edgeExists(m, last, v); ok {
			return v, true
		}
	}
	return 0, false
}

// randSource is the minimal surface Random needs from *math/rand.Rand,
// kept as an interface so tests can substitute a deterministic stream.
type randSource interface {
	Intn(n int) int
}

// Random runs for at least inst.Params.RandomMillis milliseconds of wall
// time, keeping the best feasible closed tour constructed in that window.
//
// Errors: ErrInvalidParam if RandomMillis < 1; ErrNoPath if no feasible
// tour was built before the deadline.
func Random(inst Instance) (Solution, error) {
	n, err := validateMatrix(inst.Matrix)
	if err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.RandomMillis); err != nil {
		return Solution{}, err
	}
	if n == 1 {
		return Solution{Path: []int{0, 0}, Cost: 0}, nil
	}

	r := rngFromEntropy()
	deadline := time.Now().Add(time.Duration(inst.Params.RandomMillis) * time.Millisecond)

	var best Solution
	found := false
	for {
		if sol, ok := randomAttempt(inst.Matrix, n, r); ok {
			if !found || sol.Cost < best.Cost {
				best = sol
				found = true
			}
		}
		if time.Now().After(deadline) {
			break
		}
	}

	if !found {
		return Solution{}, ErrNoPath
	}
	return best, nil
}
