// SPDX-License-Identifier: MIT
// Package: topobench/digraph
//
// conversions.go — converters between the two representations.
//
// Contract:
//   - Both directions are semantic inverses over the edge set; weights are
//     preserved (the bare list form normalizes to DefaultWeight).
//   - MatrixToList emits each vertex's neighbors in ascending column order.
//     This is the one canonical iteration order in the package: downstream
//     comparisons depend on it, so it must not change.
//   - Pure functions: inputs are never mutated, outputs share no memory
//     with inputs.

package digraph

// ListToMatrix converts an adjacency list to the equivalent matrix.
// The vertex count is len(adj); vertices without outgoing edges still
// occupy a full zero row. Returns ErrOutOfRange, ErrSelfLoop or
// ErrDuplicateEdge for a malformed list.
// Complexity: O(V² + E) time, O(V²) space.
func ListToMatrix(adj AdjList) (Matrix, error) {
	if err := adj.Validate(); err != nil {
		return nil, err
	}
	m := NewMatrix(len(adj))
	for u, neighbors := range adj {
		for _, e := range neighbors {
			m[u][e.To] = weightOf(e)
		}
	}
	return m, nil
}

// MatrixToList converts a square matrix to the equivalent adjacency list,
// scanning each row's columns in ascending order. Returns ErrNonSquare for
// a ragged matrix and ErrSelfLoop for a nonzero diagonal.
// Complexity: O(V²) time, O(V + E) space.
func MatrixToList(m Matrix) (AdjList, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	adj := make(AdjList, len(m))
	for u, row := range m {
		for v, cell := range row {
			if cell != 0 {
				adj[u] = append(adj[u], Neighbor{To: v, Weight: cell})
			}
		}
	}
	return adj, nil
}
