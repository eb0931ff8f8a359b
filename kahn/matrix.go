// SPDX-License-Identifier: MIT
// Package: topobench/kahn
//
// matrix.go — Kahn's algorithm over an adjacency matrix.
//
// Contract:
//   - Input must satisfy digraph.Matrix.Validate (square, zero diagonal);
//     violations surface as digraph.ErrNonSquare / digraph.ErrSelfLoop.
//   - Semantics match SortList exactly: ascending initial queue, cycle as
//     a Result, identical classification for the same underlying graph.
//
// Complexity: O(V²) time regardless of edge count — indegrees are column
// sums and every dequeued vertex scans its whole row. Keep it that way:
// the naive scan is the measured object, not an implementation accident.

package kahn

import "github.com/topobench/topobench/digraph"

// SortMatrix topologically sorts the digraph given as an adjacency matrix,
// or reports a cycle via the Result.
func SortMatrix(m digraph.Matrix) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	n := len(m)

	// Indegree of v = number of nonzero cells down column v.
	indegree := make([]int, n)
	for v := 0; v < n; v++ {
		count := 0
		for u := 0; u < n; u++ {
			if m[u][v] != 0 {
				count++
			}
		}
		indegree[v] = count
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	var v int
	for len(queue) > 0 {
		v, queue = queue[0], queue[1:]
		order = append(order, v)
		// Full row scan to locate outgoing edges.
		for w := 0; w < n; w++ {
			if m[v][w] != 0 {
				indegree[w]--
				if indegree[w] == 0 {
					queue = append(queue, w)
				}
			}
		}
	}

	if len(order) != n {
		return cycle(), nil
	}
	return Result{Order: order, Acyclic: true}, nil
}
