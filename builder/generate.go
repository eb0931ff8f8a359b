// SPDX-License-Identifier: MIT
// Package: topobench/builder
//
// generate.go — random simple digraph generation.
//
// Contract:
//   - n >= 0 (else ErrBadVertexCount).
//   - density in [0,1] after percent normalization (else ErrInvalidDensity).
//   - weight range 1 <= min <= max when weighted (else ErrInvalidWeightRange).
//   - Exactly m = round(density·n·(n-1)) edges, no self-loops, no repeats;
//     m is forced to 0 when n <= 1 since no valid pair exists.
//   - Returns both representations built from the same accepted edges.
//
// Determinism:
//   - Edges are accepted in draw order; each vertex's adjacency sequence
//     reflects that order. A fixed seed fixes the edge set and all weights.

package builder

import (
	"fmt"
	"math"

	"github.com/topobench/topobench/digraph"
)

// percentThreshold separates fractional densities from percent form:
// anything above it is divided by percentScale before validation.
const (
	percentThreshold = 1.0
	percentScale     = 100.0
)

// minWeight is the smallest admissible edge weight. Zero encodes absence
// in the matrix representation and is therefore excluded.
const minWeight = 1

// Generate samples a random simple directed graph over vertices 0..n-1 with
// round(density·n·(n-1)) edges, returned as both representations.
// Density above 1 is interpreted as a percent. See package doc for the
// sampling model and cost.
func Generate(n int, density float64, opts ...Option) (*digraph.Graph, error) {
	// 1) Validate parameters before any work begins.
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadVertexCount)
	}
	if density > percentThreshold {
		density /= percentScale
	}
	if density < 0 || density > percentThreshold || math.IsNaN(density) {
		return nil, fmt.Errorf("density=%v after normalization: %w", density, ErrInvalidDensity)
	}

	cfg := newConfig(opts...)
	if cfg.weighted && (cfg.wmin < minWeight || cfg.wmin > cfg.wmax) {
		return nil, fmt.Errorf("weight range [%d,%d]: %w", cfg.wmin, cfg.wmax, ErrInvalidWeightRange)
	}

	// 2) Resolve the edge-count target. With n <= 1 no (u,v), u != v exists.
	maxEdges := n * (n - 1)
	m := 0
	if n > 1 {
		m = int(math.Round(density * float64(maxEdges)))
	}

	// 3) Allocate both representations up front.
	list := make(digraph.AdjList, n)
	mat := digraph.NewMatrix(n)

	// 4) Rejection sampling: draw uniform pairs until m distinct accepted.
	// A zero matrix cell doubles as the "already chosen" set.
	rng := cfg.rng
	var u, v, w int
	for accepted := 0; accepted < m; {
		u = rng.Intn(n)
		v = rng.Intn(n)
		if u == v || mat[u][v] != 0 {
			continue
		}
		w = digraph.DefaultWeight
		if cfg.weighted {
			w = cfg.wmin + rng.Intn(cfg.wmax-cfg.wmin+1)
		}
		list[u] = append(list[u], digraph.Neighbor{To: v, Weight: w})
		mat[u][v] = w
		accepted++
	}

	return &digraph.Graph{N: n, Weighted: cfg.weighted, List: list, Matrix: mat}, nil
}
