// SPDX-License-Identifier: MIT
// Package: topobench/bench
//
// run.go — the experiment runner.
//
// Contract:
//   - Run validates the plan first; nothing executes on a bad plan.
//   - The record slice is ordered by grid position (n outer, density,
//     trial inner) regardless of goroutine completion order.
//   - Cancellation via ctx stops scheduling new trials and Run returns the
//     context error; partial results are discarded.

package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/topobench/topobench/builder"
	"github.com/topobench/topobench/kahn"
)

// trialSpec pins down one grid cell before any goroutine starts.
type trialSpec struct {
	n       int
	density float64
	trial   int
	seed    int64
}

// Run executes the full grid and returns one Record per trial.
func Run(ctx context.Context, plan Plan) ([]Record, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	// Expand the grid up front so seeds depend only on grid position.
	specs := make([]trialSpec, 0, len(plan.Ns)*len(plan.Densities)*plan.Trials)
	for _, n := range plan.Ns {
		for _, density := range plan.Densities {
			for trial := 0; trial < plan.Trials; trial++ {
				specs = append(specs, trialSpec{
					n:       n,
					density: density,
					trial:   trial,
					seed:    deriveSeed(plan.Seed, uint64(len(specs))),
				})
			}
		}
	}

	records := make([]Record, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.parallelism())
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rec, err := runTrial(plan, spec)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// runTrial generates one graph and times both sort variants on it.
func runTrial(plan Plan, spec trialSpec) (Record, error) {
	opts := []builder.Option{builder.WithSeed(spec.seed)}
	if plan.Weighted {
		opts = append(opts, builder.WithWeights(plan.WeightMin, plan.WeightMax))
	}
	graph, err := builder.Generate(spec.n, spec.density, opts...)
	if err != nil {
		return Record{}, fmt.Errorf("bench: n=%d density=%v: %w", spec.n, spec.density, err)
	}

	start := time.Now()
	listRes, err := kahn.SortList(graph.List)
	listNs := time.Since(start).Nanoseconds()
	if err != nil {
		return Record{}, fmt.Errorf("bench: list sort: %w", err)
	}

	start = time.Now()
	matRes, err := kahn.SortMatrix(graph.Matrix)
	matrixNs := time.Since(start).Nanoseconds()
	if err != nil {
		return Record{}, fmt.Errorf("bench: matrix sort: %w", err)
	}

	if listRes.Acyclic != matRes.Acyclic {
		return Record{}, fmt.Errorf("bench: n=%d density=%v seed=%d: %w",
			spec.n, spec.density, spec.seed, ErrVariantMismatch)
	}

	return Record{
		N:        spec.n,
		Density:  spec.density,
		Trial:    spec.trial,
		Seed:     spec.seed,
		Edges:    graph.List.EdgeCount(),
		Acyclic:  listRes.Acyclic,
		ListNs:   listNs,
		MatrixNs: matrixNs,
	}, nil
}
