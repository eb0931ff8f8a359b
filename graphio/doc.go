// SPDX-License-Identifier: MIT

// Package graphio reads and writes the externally observable artifacts of
// the core: the JSON adjacency-list encoding and plain-text outputs.
//
// The JSON form is a mapping from decimal-string vertex keys ("0".."n-1")
// to ordered entry sequences. An entry is either a bare integer target
// (unweighted graph) or a two-element [target, weight] array (weighted
// graph); the two forms never mix inside one document. Keys are emitted in
// ascending vertex order so serialized graphs diff cleanly.
//
// Text artifacts mirror what the experiment harness persists next to its
// measurements: a topological order as one space-separated line, the
// literal line "CYCLE" for a non-DAG, and a human-readable adjacency
// listing.
//
// Malformed documents are rejected with the package sentinels
// (ErrBadVertexKey, ErrMalformedEntry) or with the digraph validation
// errors; nothing is silently repaired.
package graphio
