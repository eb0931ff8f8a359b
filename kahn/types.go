// SPDX-License-Identifier: MIT
// Package: topobench/kahn
//
// types.go — the sort outcome type.

package kahn

// Result is the outcome of a topological sort. A cycle is a valid outcome,
// not an error: when Acyclic is false, Order is nil and the graph is not a
// DAG (no partial order and no identification of the offending vertices).
// When Acyclic is true, Order contains every vertex exactly once with each
// edge's source preceding its target.
type Result struct {
	Order   []int
	Acyclic bool
}

// cycle is the designated non-order outcome.
func cycle() Result {
	return Result{Acyclic: false}
}
