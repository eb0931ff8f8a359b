// SPDX-License-Identifier: MIT
// Package: topobench/kahn
//
// list.go — Kahn's algorithm over an adjacency list.
//
// Contract:
//   - Input must satisfy digraph.AdjList.Validate; violations surface as
//     the digraph sentinels (ErrOutOfRange, ErrSelfLoop, ErrDuplicateEdge).
//   - Queue initialization is ascending by vertex index (deterministic
//     tie-break); later enqueues follow adjacency order.
//
// Complexity: O(V + E) time, O(V) auxiliary space.

package kahn

import "github.com/topobench/topobench/digraph"

// SortList topologically sorts the digraph given as an adjacency list,
// or reports a cycle via the Result.
func SortList(adj digraph.AdjList) (Result, error) {
	if err := adj.Validate(); err != nil {
		return Result{}, err
	}
	n := len(adj)

	// Indegree by edge iteration.
	indegree := make([]int, n)
	for _, neighbors := range adj {
		for _, e := range neighbors {
			indegree[e.To]++
		}
	}

	// Seed the FIFO with indegree-0 vertices, ascending.
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
		for _, e := range adj[v] {
			indegree[e.To]--
			if indegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	// Vertices left undrained sit on at least one cycle.
	if len(order) != n {
		return cycle(), nil
	}
	return Result{Order: order, Acyclic: true}, nil
}
