// SPDX-License-Identifier: MIT
// Package: topobench/digraph
//
// types.go — canonical graph representations.
//
// Contract:
//   - Vertex domain is always dense: 0..n-1, no gaps, no remapping.
//   - Simple directed graphs only: no self-loops, no parallel edges.
//   - A Graph is immutable once produced; algorithms consume, never mutate.

package digraph

// DefaultWeight is the weight written into a Matrix cell for an edge whose
// adjacency-list entry carries no explicit weight.
const DefaultWeight = 1

// Neighbor is a single outgoing edge entry in an adjacency list: the target
// vertex plus an optional weight. Weight == 0 is the "bare target" form and
// is rendered as DefaultWeight wherever a numeric weight is required, since
// 0 encodes edge absence in the matrix representation.
type Neighbor struct {
	To     int
	Weight int
}

// AdjList maps each vertex u (the slice index) to the ordered sequence of
// its outgoing edges. The per-vertex order reflects insertion order and is
// not canonical; a nil inner slice is a vertex with no outgoing edges.
type AdjList [][]Neighbor

// Matrix is a square adjacency matrix. Matrix[u][v] == 0 means no edge
// u→v; any nonzero value is the edge's weight.
type Matrix [][]int

// Graph bundles both representations of one generated graph. List and
// Matrix always encode the identical edge set; Weighted records whether
// edge weights were sampled (false ⇒ every weight is DefaultWeight).
type Graph struct {
	N        int
	Weighted bool
	List     AdjList
	Matrix   Matrix
}

// NewMatrix allocates an n×n zero matrix.
// Complexity: O(n²) time and space.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

// EdgeCount returns the number of edges in the list. O(V).
func (a AdjList) EdgeCount() int {
	total := 0
	for _, neighbors := range a {
		total += len(neighbors)
	}
	return total
}

// EdgeCount returns the number of nonzero cells. O(V²).
func (m Matrix) EdgeCount() int {
	total := 0
	for _, row := range m {
		for _, cell := range row {
			if cell != 0 {
				total++
			}
		}
	}
	return total
}

// weightOf normalizes a Neighbor's weight: the bare form maps to
// DefaultWeight, everything else passes through.
func weightOf(e Neighbor) int {
	if e.Weight == 0 {
		return DefaultWeight
	}
	return e.Weight
}
