// SPDX-License-Identifier: MIT

// Package digraph defines the two canonical representations of a simple
// directed graph over the dense vertex set 0..n-1, and the converters
// between them.
//
// The digraph package provides:
//
//   - AdjList — per-vertex ordered sequences of outgoing Neighbor entries.
//   - Matrix — an n×n grid where 0 means "no edge" and any nonzero value
//     is the edge weight (1 for unweighted graphs).
//   - ListToMatrix / MatrixToList — lossless converters over the edge set,
//     weight-preserving, pure functions with no side effects.
//
// Invariants enforced by validation: no self-loops, no duplicate edges,
// every target inside 0..n-1, square matrices with a zero diagonal.
// A representation that violates them is rejected with a sentinel error
// (ErrNonSquare, ErrOutOfRange, ErrSelfLoop, ErrDuplicateEdge) — never
// silently tolerated.
//
// Both converters cost O(n²) time and O(n²) space (the matrix dominates).
package digraph
