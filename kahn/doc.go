// SPDX-License-Identifier: MIT

// Package kahn implements Kahn's algorithm twice, once per graph
// representation, with deliberately asymmetric costs.
//
// SortList runs over an adjacency list in O(V+E): indegrees are counted by
// iterating edges, and each dequeued vertex touches only its own outgoing
// entries. SortMatrix runs over an adjacency matrix in O(V²) regardless of
// how many edges exist: indegrees are column sums and every dequeued vertex
// rescans its full row. The quadratic-vs-linear gap is the comparative
// property this package exists to demonstrate, so the matrix variant stays
// a naive row scanner on purpose — no adjacency caching.
//
// Both variants share semantics: the FIFO queue is seeded with indegree-0
// vertices in ascending index order, the returned order puts every edge's
// source before its target, and a graph that cannot be fully drained is
// cyclic. A cycle is a first-class outcome carried by Result.Acyclic, never
// an error; errors are reserved for malformed representations and come from
// the digraph validators (digraph.ErrNonSquare and friends).
//
// The two variants always agree on cycle-vs-acyclic classification for the
// same graph, and since both use the ascending tie-break for the initial
// queue, repeated runs over the same immutable input return the identical
// order.
package kahn
