// Package tsp - Genetic algorithm (GEN)
//
// The chromosome is a two-allele layout: a first/last vertex v*, a first
// allele (the path segment right after v*) and a second
// allele (the segment right before returning to v*), plus four cached cost
// components whose sum is always the chromosome's true tour cost. This
// layout is what makes splice recombination (tryRecombine) and mutation
// (applySwap) cheap: pairing one parent's first allele with another's
// second allele only needs three new edge costs, and swapping two ring
// positions only needs the at-most-four edges touching them, never a
// full tour rescan.
package tsp

import (
	"sort"
	"strconv"
	"strings"

	mrand "math/rand"
)

// genRetryBound caps per-attempt retries for infeasible Fisher-Yates swaps
// and infeasible mutation swaps, mirroring Random's randomRetryBound.
const genRetryBound = 10000

// genSeedAttemptBound caps the total number of candidate tours tried while
// seeding the initial population, guarding against an instance too sparse
// to support GenPopulationSize distinct feasible chromosomes.
const genSeedAttemptBound = 100000

// genDefaultSalt seeds the root-to-substream derivation when entropyUint64
// fails to read from crypto/rand, so seeding and evolution still get
// distinct (if not independently-entropic) substream identifiers.
const genDefaultSalt = 0x5eedc0de

// chromosome is one individual: v*, its two alleles, and the four cached
// cost components whose sum must always equal the true tour cost.
type chromosome struct {
	vStar int
	fa    []int
	sa    []int

	firstLastVCost int
	faCost         int
	interCost      int
	saCost         int
}

func (c *chromosome) cost() int {
	return c.firstLastVCost + c.faCost + c.interCost + c.saCost
}

// tour reconstructs the closed path: v*, first allele, second allele, v*.
func (c *chromosome) tour() []int {
	out := make([]int, 0, len(c.fa)+len(c.sa)+2)
	out = append(out, c.vStar)
	out = append(out, c.fa...)
	out = append(out, c.sa...)
	out = append(out, c.vStar)
	return out
}

func (c *chromosome) key() string {
	t := c.tour()
	var b strings.Builder
	for _, v := range t {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}

// sumConsecutive sums the edge costs along verts (not closed); a slice of
// length <= 1 costs 0 trivially.
func sumConsecutive(m *CostMatrix, verts []int) (int, bool) {
	sum := 0
	for i := 0; i+1 < len(verts); i++ {
		c, ok := edgeExists(m, verts[i], verts[i+1])
		if !ok {
			return 0, false
		}
		sum += c
	}
	return sum, true
}

func containsVertex(verts []int, v int) bool {
	for _, x := range verts {
		if x == v {
			return true
		}
	}
	return false
}

func allelesOverlap(a, b []int) bool {
	for _, v := range a {
		if containsVertex(b, v) {
			return true
		}
	}
	return false
}

// buildChromosome assembles a chromosome from a full permutation ring
// (perm[0] becomes v*) split at split (2 <= split <= len(perm)-1, so both
// alleles are non-empty), computing all four cached costs from m. Returns
// ok=false if any of the three boundary edges or an allele-internal edge
// is absent.
func buildChromosome(perm []int, split int, m *CostMatrix) (*chromosome, bool) {
	vStar := perm[0]
	fa := CopyPath(perm[1:split])
	sa := CopyPath(perm[split:])

	faCost, ok1 := sumConsecutive(m, fa)
	saCost, ok2 := sumConsecutive(m, sa)
	c1, ok3 := edgeExists(m, vStar, fa[0])
	c2, ok4 := edgeExists(m, fa[len(fa)-1], sa[0])
	c3, ok5 := edgeExists(m, sa[len(sa)-1], vStar)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return nil, false
	}
	return &chromosome{
		vStar:          vStar,
		fa:             fa,
		sa:             sa,
		firstLastVCost: c1 + c3,
		interCost:      c2,
		faCost:         faCost,
		saCost:         saCost,
	}, true
}

// tryRecombine splices faSrc's first allele and saSrc's second allele
// around vStar. It fails if either allele already contains vStar, the
// alleles share a vertex, or one of the three connecting edges is absent.
func tryRecombine(m *CostMatrix, faSrc, saSrc *chromosome, vStar int) (*chromosome, bool) {
	fa, sa := faSrc.fa, saSrc.sa
	if containsVertex(fa, vStar) || containsVertex(sa, vStar) {
		return nil, false
	}
	if allelesOverlap(fa, sa) {
		return nil, false
	}
	c1, ok1 := edgeExists(m, vStar, fa[0])
	c2, ok2 := edgeExists(m, fa[len(fa)-1], sa[0])
	c3, ok3 := edgeExists(m, sa[len(sa)-1], vStar)
	if !(ok1 && ok2 && ok3) {
		return nil, false
	}
	return &chromosome{
		vStar:          vStar,
		fa:             CopyPath(fa),
		sa:             CopyPath(sa),
		firstLastVCost: c1 + c3,
		interCost:      c2,
		faCost:         faSrc.faCost,
		saCost:         saSrc.saCost,
	}, true
}

// fisherYatesFeasible performs the position-N-1-down-to-1 Fisher-Yates
// pass over base, retrying an infeasible candidate swap with a fresh
// uniform earlier position up to genRetryBound times. base is treated as a
// closed ring (wrap-around/adjacency aware via swapDelta), matching the
// feasibility check used everywhere else a tour position is perturbed.
func fisherYatesFeasible(base []int, m *CostMatrix, r *mrand.Rand) ([]int, bool) {
	n := len(base)
	perm := CopyPath(base)
	for i := n - 1; i > 0; i-- {
		placed := false
		for attempt := 0; attempt < genRetryBound; attempt++ {
			j := r.Intn(i + 1)
			if j == i {
				placed = true
				break
			}
			lo, hi := j, i
			if _, ok := swapDelta(perm, m, n, lo, hi); ok {
				perm[i], perm[j] = perm[j], perm[i]
				placed = true
				break
			}
		}
		if !placed {
			return nil, false
		}
	}
	return perm, true
}

// seedPopulation generates size distinct feasible chromosomes by repeated
// Fisher-Yates perturbation of base, each split at a uniformly random
// boundary. Returns ErrInvalidParam if genSeedAttemptBound candidates are
// exhausted before size distinct chromosomes are found.
func seedPopulation(m *CostMatrix, base []int, r *mrand.Rand, size int) ([]*chromosome, error) {
	n := len(base)
	seen := make(map[string]bool, size)
	pop := make([]*chromosome, 0, size)

	for attempts := 0; len(pop) < size; attempts++ {
		if attempts >= genSeedAttemptBound {
			return nil, ErrInvalidParam
		}
		perm, ok := fisherYatesFeasible(base, m, r)
		if !ok {
			return nil, ErrInvalidParam
		}
		split := 2 + r.Intn(n-2) // in [2, n-1]
		c, ok := buildChromosome(perm, split, m)
		if !ok {
			continue
		}
		key := c.key()
		if seen[key] {
			continue
		}
		seen[key] = true
		pop = append(pop, c)
	}
	return pop, nil
}

// sortPopulation orders chromosomes ascending by cost, breaking ties by
// lexicographically comparing their tours. Ascending-by-cost (rather than
// descending) keeps the best chromosome at index 0 so trimming the
// population is a simple tail truncation.
func sortPopulation(pop []*chromosome) {
	sort.Slice(pop, func(i, j int) bool {
		if pop[i].cost() != pop[j].cost() {
			return pop[i].cost() < pop[j].cost()
		}
		ti, tj := pop[i].tour(), pop[j].tour()
		for k := 0; k < len(ti) && k < len(tj); k++ {
			if ti[k] != tj[k] {
				return ti[k] < tj[k]
			}
		}
		return len(ti) < len(tj)
	})
}

// reproduce pairs successive parents (p0,p1), (p1,p2), ... and for each
// pair tries all eight combinations of {p_a, p_b} for v*, first allele,
// and second allele source, keeping the maxPerPair lowest-cost feasible
// children, until childrenPerItr children have been produced or parent
// pairs are exhausted.
func reproduce(pop []*chromosome, m *CostMatrix, maxPerPair, childrenPerItr int) []*chromosome {
	var children []*chromosome
	for i := 0; i+1 < len(pop) && len(children) < childrenPerItr; i++ {
		p1, p2 := pop[i], pop[i+1]
		var candidates []*chromosome
		for _, vSrc := range []*chromosome{p1, p2} {
			for _, faSrc := range []*chromosome{p1, p2} {
				for _, saSrc := range []*chromosome{p1, p2} {
					if child, ok := tryRecombine(m, faSrc, saSrc, vSrc.vStar); ok {
						candidates = append(candidates, child)
					}
				}
			}
		}
		sort.Slice(candidates, func(a, b int) bool { return candidates[a].cost() < candidates[b].cost() })
		kept := maxPerPair
		if kept > len(candidates) {
			kept = len(candidates)
		}
		for _, c := range candidates[:kept] {
			if len(children) >= childrenPerItr {
				break
			}
			children = append(children, c)
		}
	}
	return children
}

// locus classifies a ring position as the single v* slot, a first-allele
// slot, or a second-allele slot.
type locus int

const (
	locusVStar locus = iota
	locusFirstAllele
	locusSecondAllele
)

// locusOf reports which locus ring position pos belongs to: position 0 is
// always v*, positions [1,faLen] are the first allele, everything past
// that is the second allele.
func locusOf(pos, faLen int) locus {
	switch {
	case pos == 0:
		return locusVStar
	case pos <= faLen:
		return locusFirstAllele
	default:
		return locusSecondAllele
	}
}

// costField identifies which of the four cached cost components a ring
// edge position contributes to.
type costField int

const (
	fieldFirstLast costField = iota
	fieldFA
	fieldInter
	fieldSA
)

// fieldOfEdge reports which cached cost component the edge from ring
// position p to (p+1 mod n) belongs to. Position 0 and n-1 are always the
// two v*-incident edges (fieldFirstLast); position faLen is the
// first-allele/second-allele join (fieldInter); everything strictly
// between 0 and faLen is a first-allele-internal edge, everything
// strictly between faLen and n-1 a second-allele-internal edge.
func fieldOfEdge(p, faLen, n int) costField {
	switch {
	case p == 0 || p == n-1:
		return fieldFirstLast
	case p == faLen:
		return fieldInter
	case p < faLen:
		return fieldFA
	default:
		return fieldSA
	}
}

// touchedEdgePositions returns the distinct ring edge positions whose
// endpoint vertices change when ring positions i and j are swapped: the
// edge on each side of i and of j, deduplicated for adjacency and
// wrap-around (the same adjacency/wrap collapsing swapDelta does for the
// flat tabu tour).
func touchedEdgePositions(i, j, n int) []int {
	raw := [4]int{(i - 1 + n) % n, i, (j - 1 + n) % n, j}
	seen := make(map[int]bool, 4)
	out := make([]int, 0, 4)
	for _, p := range raw {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}

// applySwap exchanges the vertices at ring positions i and j (0 = v*, 1..
// len(fa) = first allele, beyond that = second allele) and returns the
// resulting chromosome with its four cached cost fields patched by 4-edge
// local accounting - never a full rebuild. Returns ok=false if i and j
// coincide, are out of range, or any edge the swap touches is absent
// from m.
//
// locusOf classifies i and j into {v*, first allele, second allele}; v*
// only ever occupies position 0, so once i<j is enforced the 3x3
// (locus(i),locus(j)) matrix collapses to five reachable combinations.
// The switch below enumerates all of them explicitly (the sixth,
// v*-against-v*, is unreachable and rejected) - touchedEdgePositions and
// fieldOfEdge then account for the allele-boundary special cases (fa/sa
// head or tail reaching into the v*-incident or inter-allele edge)
// uniformly across every combination.
func (c *chromosome) applySwap(i, j int, m *CostMatrix) (*chromosome, bool) {
	faLen, saLen := len(c.fa), len(c.sa)
	n := 1 + faLen + saLen
	if i == j || i < 0 || i >= n || j < 0 || j >= n {
		return nil, false
	}
	if i > j {
		i, j = j, i
	}

	switch li, lj := locusOf(i, faLen), locusOf(j, faLen); {
	case li == locusVStar && lj == locusFirstAllele:
		// v* swapped with a first-allele vertex.
	case li == locusVStar && lj == locusSecondAllele:
		// v* swapped with a second-allele vertex.
	case li == locusFirstAllele && lj == locusFirstAllele:
		// both swap sites inside the first allele.
	case li == locusFirstAllele && lj == locusSecondAllele:
		// one site in each allele.
	case li == locusSecondAllele && lj == locusSecondAllele:
		// both swap sites inside the second allele.
	default:
		// locusOf(i) == locusVStar only when i==0, and i<j here, so
		// lj==locusVStar (hence li==lj==locusVStar) cannot occur.
		return nil, false
	}

	ring := make([]int, n)
	ring[0] = c.vStar
	copy(ring[1:1+faLen], c.fa)
	copy(ring[1+faLen:], c.sa)

	positions := touchedEdgePositions(i, j, n)
	var oldSum, newSum [4]int
	for _, p := range positions {
		cst, ok := edgeExists(m, ring[p], ring[(p+1)%n])
		if !ok {
			return nil, false
		}
		oldSum[fieldOfEdge(p, faLen, n)] += cst
	}

	ring[i], ring[j] = ring[j], ring[i]

	for _, p := range positions {
		cst, ok := edgeExists(m, ring[p], ring[(p+1)%n])
		if !ok {
			return nil, false
		}
		newSum[fieldOfEdge(p, faLen, n)] += cst
	}

	return &chromosome{
		vStar:          ring[0],
		fa:             CopyPath(ring[1 : 1+faLen]),
		sa:             CopyPath(ring[1+faLen:]),
		firstLastVCost: c.firstLastVCost - oldSum[fieldFirstLast] + newSum[fieldFirstLast],
		faCost:         c.faCost - oldSum[fieldFA] + newSum[fieldFA],
		interCost:      c.interCost - oldSum[fieldInter] + newSum[fieldInter],
		saCost:         c.saCost - oldSum[fieldSA] + newSum[fieldSA],
	}, true
}

// mutateChromosome swaps two distinct uniformly-random ring positions of
// c via applySwap, retrying an infeasible pick up to genRetryBound times.
func mutateChromosome(c *chromosome, m *CostMatrix, r *mrand.Rand) (*chromosome, bool) {
	n := 1 + len(c.fa) + len(c.sa)
	for attempt := 0; attempt < genRetryBound; attempt++ {
		i := r.Intn(n)
		j := r.Intn(n)
		if i == j {
			continue
		}
		if mutated, ok := c.applySwap(i, j, m); ok {
			return mutated, true
		}
	}
	return nil, false
}

// evolve runs one generation: reproduce over a shuffled mating order (so
// reproduction doesn't always pair the same rank-adjacent chromosomes),
// mutate, then cut back to populationSize.
func evolve(pop []*chromosome, m *CostMatrix, r *mrand.Rand, p Params) []*chromosome {
	matingOrder := make([]int, len(pop))
	for i := range matingOrder {
		matingOrder[i] = i
	}
	shuffleIntsInPlace(matingOrder, r)
	matingPool := make([]*chromosome, len(pop))
	for i, idx := range matingOrder {
		matingPool[i] = pop[idx]
	}

	children := reproduce(matingPool, m, p.GenMaxChildrenPerPair, p.GenChildrenPerItr)

	combined := make([]*chromosome, 0, len(pop)+len(children))
	combined = append(combined, pop...)
	combined = append(combined, children...)

	existing := make(map[string]bool, len(combined))
	for _, c := range combined {
		existing[c.key()] = true
	}

	for idx, c := range combined {
		if r.Intn(1000) >= p.GenMutationsPer1000 {
			continue
		}
		mutated, ok := mutateChromosome(c, m, r)
		if !ok {
			continue
		}
		key := mutated.key()
		if existing[key] {
			continue // already present: discard mutation, keep original
		}
		delete(existing, c.key())
		existing[key] = true
		combined[idx] = mutated
	}

	sortPopulation(combined)
	if len(combined) > p.GenPopulationSize {
		combined = combined[:p.GenPopulationSize]
	}
	return combined
}

// Genetic evolves a population of two-allele chromosomes for
// Params.GenItr generations and returns the best tour found, never one
// costlier than the NearestNeighbor tour the population is seeded from.
//
// Edge cases: n<=2 returns the NearestNeighbor result directly, since
// both alleles cannot be non-empty below 3 vertices.
//
// Errors: ErrInvalidParam for any out-of-domain parameter, or if the
// initial population cannot be seeded; ErrNoPath if no feasible starting
// tour exists.
func Genetic(inst Instance) (Solution, error) {
	n, err := validateMatrix(inst.Matrix)
	if err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.GenItr); err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.GenPopulationSize); err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.GenChildrenPerItr); err != nil {
		return Solution{}, err
	}
	if err := positive(inst.Params.GenMaxChildrenPerPair); err != nil {
		return Solution{}, err
	}
	if err := inRangeInclusive(inst.Params.GenMutationsPer1000, 0, 1000); err != nil {
		return Solution{}, err
	}

	if n <= 2 {
		return NearestNeighbor(inst)
	}

	seed, err := NearestNeighbor(inst)
	if err != nil {
		return Solution{}, err
	}

	root := rngFromEntropy()
	salt, err := entropyUint64()
	if err != nil {
		salt = genDefaultSalt
	}
	seedRNG := deriveRNG(root, salt)
	evolveRNG := deriveRNG(root, salt+1)

	pop, err := seedPopulation(inst.Matrix, seed.Path[:n], seedRNG, inst.Params.GenPopulationSize)
	if err != nil {
		return Solution{}, err
	}
	sortPopulation(pop)

	for gen := 0; gen < inst.Params.GenItr; gen++ {
		pop = evolve(pop, inst.Matrix, evolveRNG, inst.Params)
	}

	best := pop[0]
	if best.cost() > seed.Cost {
		return seed, nil
	}
	return Solution{Path: best.tour(), Cost: best.cost()}, nil
}
