// SPDX-License-Identifier: MIT
// Package: topobench/digraph
//
// validate.go — structural validation shared by the converters and the
// kahn package. Validation is the single gate between "malformed input"
// and "trusted representation": past it, algorithms may index freely.

package digraph

import "fmt"

// Validate checks the list against the simple-digraph invariants:
// every target in 0..len(a)-1, no self-loops, no duplicate (u,v) pairs.
// Complexity: O(V + E) time, O(V) auxiliary space.
func (a AdjList) Validate() error {
	n := len(a)
	seen := make(map[int]struct{})
	for u, neighbors := range a {
		clear(seen)
		for _, e := range neighbors {
			if e.To < 0 || e.To >= n {
				return fmt.Errorf("digraph: edge %d->%d with n=%d: %w", u, e.To, n, ErrOutOfRange)
			}
			if e.To == u {
				return fmt.Errorf("digraph: edge %d->%d: %w", u, e.To, ErrSelfLoop)
			}
			if _, dup := seen[e.To]; dup {
				return fmt.Errorf("digraph: edge %d->%d: %w", u, e.To, ErrDuplicateEdge)
			}
			seen[e.To] = struct{}{}
		}
	}
	return nil
}

// Validate checks squareness and the zero diagonal. Cell values are not
// otherwise constrained: any nonzero entry is an edge and its value is the
// weight. Complexity: O(V²) time, O(1) space.
func (m Matrix) Validate() error {
	n := len(m)
	for u, row := range m {
		if len(row) != n {
			return fmt.Errorf("digraph: row %d has %d columns, want %d: %w", u, len(row), n, ErrNonSquare)
		}
		if row[u] != 0 {
			return fmt.Errorf("digraph: matrix[%d][%d]=%d: %w", u, u, row[u], ErrSelfLoop)
		}
	}
	return nil
}
