// Package tsp - Tabu Search (metaheuristic local search with short-term
// memory).
//
// The working tour is a ring of n positions (the closing repeat of the
// start vertex is implicit, unlike Solution.Path). Every iteration scans
// all C(n,2) position pairs, evaluates an O(1) swap delta by summing the
// at-most-four edges touching the two swap sites (with adjacency and
// wrap-around special-casing so a shared edge is never counted twice),
// and applies the best admissible move even when it does not improve the
// running cost - the tabu/aspiration filter is what lets the search escape
// a local minimum instead of stalling in it.
package tsp

// tsCandidate is one evaluated, admissible swap: positions i<j and the
// resulting cost delta.
type tsCandidate struct {
	i, j, delta int
}

// swapDelta computes the cost change of exchanging the vertices at
// positions i<j of tour (an n-element ring, no duplicated closing vertex),
// returning ok=false if any edge touched by the swap is absent in m.
//
// n==2 is a fixed point: exchanging the only two vertices retraces the
// same two directed edges in the opposite order, whose costs sum
// identically, so the delta is always zero.
func swapDelta(tour []int, m *CostMatrix, n, i, j int) (delta int, ok bool) {
	if n == 2 {
		return 0, true
	}

	a, b := tour[i], tour[j]

	forwardAdjacent := j == i+1
	wrapAdjacent := i == 0 && j == n-1

	if forwardAdjacent || wrapAdjacent {
		var p, q int // p precedes the i/j pair, q follows it, in ring order
		if forwardAdjacent {
			p = tour[(i-1+n)%n]
			q = tour[(j+1)%n]
			// ring order: p, a(i), b(j), q
			oldC1, ok1 := edgeExists(m, p, a)
			oldC2, ok2 := edgeExists(m, a, b)
			oldC3, ok3 := edgeExists(m, b, q)
			newC1, ok4 := edgeExists(m, p, b)
			newC2, ok5 := edgeExists(m, b, a)
			newC3, ok6 := edgeExists(m, a, q)
			if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
				return 0, false
			}
			return (newC1 + newC2 + newC3) - (oldC1 + oldC2 + oldC3), true
		}
		// wrapAdjacent: ring order is ..., p, b(j), a(i), q, ...
		p = tour[(j-1+n)%n]
		q = tour[(i+1)%n]
		oldC1, ok1 := edgeExists(m, p, b)
		oldC2, ok2 := edgeExists(m, b, a)
		oldC3, ok3 := edgeExists(m, a, q)
		newC1, ok4 := edgeExists(m, p, a)
		newC2, ok5 := edgeExists(m, a, b)
		newC3, ok6 := edgeExists(m, b, q)
		if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
			return 0, false
		}
		return (newC1 + newC2 + newC3) - (oldC1 + oldC2 + oldC3), true
	}

	prevI, nextI := tour[(i-1+n)%n], tour[(i+1)%n]
	prevJ, nextJ := tour[(j-1+n)%n], tour[(j+1)%n]

	oldC1, ok1 := edgeExists(m, prevI, a)
	oldC2, ok2 := edgeExists(m, a, nextI)
	oldC3, ok3 := edgeExists(m, prevJ, b)
	oldC4, ok4 := edgeExists(m, b, nextJ)
	newC1, ok5 := edgeExists(m, prevI, b)
	newC2, ok6 := edgeExists(m, b, nextI)
	newC3, ok7 := edgeExists(m, prevJ, a)
	newC4, ok8 := edgeExists(m, a, nextJ)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 && ok8) {
		return 0, false
	}
	return (newC1 + newC2 + newC3 + newC4) - (oldC1 + oldC2 + oldC3 + oldC4), true
}

// TabuSearch runs the tabu local search starting from a NearestNeighbor
// tour and returns the best tour found over Params.TabuItr iterations.
//
// Errors: ErrInvalidParam if TabuItr, TabuMaxItrNoImprove, or TabuTenure is
// < 1; ErrNoPath if no feasible starting tour exists.
func TabuSearch(inst Instance) (Solution, error) {
	n, err := validateMatrix(inst.Matrix)
	if err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.TabuItr); err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.TabuMaxItrNoImprove); err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.TabuTenure); err != nil {
		return Solution{}, err
	}
	if n == 1 {
		return Solution{Path: []int{0, 0}, Cost: 0}, nil
	}

	seed, err := NearestNeighbor(inst)
	if err != nil {
		return Solution{}, err
	}

	tour := CopyPath(seed.Path[:n])
	cost := seed.Cost

	incumbentTour := CopyPath(tour)
	incumbentCost := cost

	tabu := make([]int, n*n)
	tenure := inst.Params.TabuTenure
	noImproveStop := inst.Params.TabuMaxItrNoImprove
	noImproveCounter := 0

	for step := 0; step < inst.Params.TabuItr; step++ {
		var best *tsCandidate
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				delta, ok := swapDelta(tour, inst.Matrix, n, i, j)
				if !ok {
					continue
				}
				newCost := cost + delta
				tabooed := tabu[tour[i]*n+tour[j]] > 0
				aspiration := newCost < incumbentCost
				if tabooed && !aspiration {
					continue
				}
				if best == nil || delta < best.delta {
					best = &tsCandidate{i: i, j: j, delta: delta}
				}
			}
		}

		for k := range tabu {
			if tabu[k] > 0 {
				tabu[k]--
			}
		}

		if best == nil {
			noImproveCounter++
			if noImproveCounter >= noImproveStop {
				break
			}
			continue
		}

		if best.delta >= 0 {
			noImproveCounter++
		} else {
			noImproveCounter = 0
		}

		va, vb := tour[best.i], tour[best.j]
		tour[best.i], tour[best.j] = tour[best.j], tour[best.i]
		cost += best.delta
		tabu[va*n+vb] = tenure
		tabu[vb*n+va] = tenure

		if cost < incumbentCost {
			incumbentCost = cost
			incumbentTour = CopyPath(tour)
		}

		if inst.Optimal != nil && incumbentCost == inst.Optimal.Cost {
			break
		}

		if noImproveCounter >= noImproveStop {
			break
		}
	}

	return Solution{Path: CloseTour(incumbentTour), Cost: incumbentCost}, nil
}
