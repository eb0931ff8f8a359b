// SPDX-License-Identifier: MIT
// Package digraph: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST branch with errors.Is, never by string comparison.
//   - Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   - Validation never panics on user input.

package digraph

import "errors"

// ErrNonSquare signals that a matrix argument is ragged: some row's length
// differs from the number of rows.
var ErrNonSquare = errors.New("digraph: matrix is not square")

// ErrOutOfRange indicates an edge target outside the dense vertex domain
// 0..n-1 of its representation.
var ErrOutOfRange = errors.New("digraph: vertex index out of range")

// ErrSelfLoop indicates an edge whose source equals its target, in either
// representation (nonzero diagonal cell, or Neighbor.To == u).
var ErrSelfLoop = errors.New("digraph: self-loop not allowed")

// ErrDuplicateEdge indicates a repeated (u,v) pair inside an adjacency list.
var ErrDuplicateEdge = errors.New("digraph: duplicate edge")
