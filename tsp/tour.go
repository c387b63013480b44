// Package tsp - tour and partial-path utilities shared by every solver.
//
// These helpers operate purely on index sequences; they never touch a
// CostMatrix. Design mirrors the source this package is built on: no
// logging, no panics on user input, only sentinel errors, O(n) time and
// O(n) extra space for validation.
package tsp

// ValidateTour enforces the closed-tour invariants:
//
//	len(path) == n+1, path[0] == path[n], and every vertex in [0,n)
//	appears exactly once among path[0:n].
//
// n==1 is a special case: the only valid tour is [0,0] with a single
// vertex repeated.
func ValidateTour(path []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(path) != n+1 {
		return ErrDimensionMismatch
	}
	if path[0] != path[n] {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := path[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// ValidatePartialPath enforces the partial-path invariants: length <= n,
// all distinct, no repeat of the start vertex.
func ValidatePartialPath(path []int, n int) error {
	if n <= 0 || len(path) > n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range path {
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// CloseTour appends the start vertex to a length-n path to form a
// length-(n+1) closed tour. path is not modified; a fresh slice is
// returned.
func CloseTour(path []int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = path[0]
	return out
}

// CopyPath returns an independent copy of path.
func CopyPath(path []int) []int {
	if path == nil {
		return nil
	}
	out := make([]int, len(path))
	copy(out, path)
	return out
}
