// Package instance reads a cost-matrix instance file: a plain-text,
// whitespace-delimited grid -
//
//	<N>
//	<cost> <cost> ... <cost>     (N values)
//	...                          (N rows)
//
// -1 denotes an absent edge. No retrieved example repo parses this exact
// format, so the reader is a small hand-rolled scanner in the style
// tsp/validate.go uses for its own input checks - sentinel errors only,
// no panics on malformed input.
package instance

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/katalvlaran/tspsolve/tsp"
)

// Error kinds, disjoint by failure stage.
var (
	// ErrBadRead indicates an I/O failure while reading the instance file.
	ErrBadRead = errors.New("instance: bad read")

	// ErrBadData indicates the file content is malformed: a bad vertex
	// count, fewer than N*N values, a non-integer token, or a cost below -1.
	// Values are read as one whitespace-separated stream, so line breaks are
	// not checked against rows, and tokens after the N*N-th are not read.
	ErrBadData = errors.New("instance: bad data")
)

// Read parses a cost-matrix instance from r and returns the resulting
// *tsp.CostMatrix.
func Read(r io.Reader) (*tsp.CostMatrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	tok, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, ErrBadRead
		}
		return nil, ErrBadData
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return nil, ErrBadData
	}

	m, err := tsp.NewCostMatrix(n)
	if err != nil {
		return nil, ErrBadData
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tok, ok := next()
			if !ok {
				if err := sc.Err(); err != nil {
					return nil, ErrBadRead
				}
				return nil, ErrBadData
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, ErrBadData
			}
			if i == j {
				continue // diagonal is ignored; NewCostMatrix already set it Absent
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, ErrBadData
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, ErrBadRead
	}
	return m, nil
}
