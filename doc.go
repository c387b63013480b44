// Command-less library root for tspsolve: a Traveling Salesman Problem
// solver library and benchmarking harness.
//
// Subpackages:
//
//	tsp/      — solvers: brute force, nearest neighbor, random, three
//	            branch & bound traversals, tabu search, genetic
//	instance/ — whitespace-delimited cost-matrix instance file reader
//	config/   — INI-style run configuration loader
//	measure/  — warmup-then-sample measurement harness and CSV report writer
//	cmd/tspsolve/ — CLI wiring all of the above together
//
// Given an integer cost matrix (-1 marking an absent edge), each tsp
// solver returns a minimum-cost (or best-effort, for heuristics) closed
// Hamiltonian tour.
package tspsolve
