// SPDX-License-Identifier: MIT

// Package bench times the two Kahn variants against each other over a grid
// of graph sizes and densities.
//
// A Plan (loadable from YAML) spans |Ns|·|Densities|·Trials independent
// trials. Each trial derives its own seed from the plan seed with a
// SplitMix64 finalizer, generates a graph with builder.Generate, times
// kahn.SortList and kahn.SortMatrix on it, and records both durations
// together with the edge count and the cycle classification.
//
// Trials are independent by construction — every one owns its RNG — so Run
// executes them under an errgroup with a configurable parallelism limit.
// Results land in a pre-indexed slice, making the output order a function
// of the plan alone, not of goroutine scheduling.
//
// WriteCSV renders the records with a fixed header for downstream
// plotting. The interesting column pair is list_ns versus matrix_ns: the
// list variant scales with V+E, the matrix variant with V², and the gap
// widens as graphs grow sparser and larger.
package bench
