// SPDX-License-Identifier: MIT

// Package builder generates random simple directed graphs with exact
// edge-count targeting.
//
// Generate samples an Erdős–Rényi style digraph over n vertices: the target
// edge count is m = round(density·n·(n-1)) and exactly m distinct edges are
// drawn by uniform rejection sampling (candidate pairs are rejected on
// self-loop or repeat). Density may be given as a fraction in [0,1] or as a
// percent (any value > 1 is divided by 100 first).
//
// The result carries both canonical representations — adjacency list and
// adjacency matrix — built from the same accepted edge sequence, so the two
// always encode the identical edge set.
//
// Determinism is explicit: generation draws from an owned *rand.Rand
// (WithSeed / WithRand); there is no process-wide generator and no hidden
// time-based seeding. The same seed and parameters reproduce the identical
// edge set and weights.
//
// Expected cost is O(n² + m) for the allocations plus O(m / (1 - m/mMax))
// draws; the rejection rate degrades as density approaches 1, an accepted
// tradeoff for realistic densities.
package builder
