// SPDX-License-Identifier: MIT
// Package: topobench/bench
//
// types.go — experiment plan and measurement record.

package bench

import (
	"errors"
	"fmt"
	"runtime"
)

// Plan describes one experiment grid. The zero value is invalid; load one
// from YAML (LoadPlan) or fill the fields and call Validate.
type Plan struct {
	// Ns are the vertex counts to sweep, each >= 0.
	Ns []int `yaml:"ns"`
	// Densities are edge densities, fractional or percent form (>1).
	Densities []float64 `yaml:"densities"`
	// Trials is the number of independently seeded runs per (n, density).
	Trials int `yaml:"trials"`
	// Weighted toggles uniform integer weights in [WeightMin, WeightMax].
	Weighted  bool `yaml:"weighted"`
	WeightMin int  `yaml:"weight_min"`
	WeightMax int  `yaml:"weight_max"`
	// Seed is the root seed; every trial derives its own from it.
	Seed int64 `yaml:"seed"`
	// Parallelism bounds concurrent trials; 0 means GOMAXPROCS.
	Parallelism int `yaml:"parallelism"`
}

// Record is one trial's measurements.
type Record struct {
	N        int
	Density  float64
	Trial    int
	Seed     int64
	Edges    int
	Acyclic  bool
	ListNs   int64
	MatrixNs int64
}

// ErrBadPlan indicates a plan that fails validation before any trial runs.
var ErrBadPlan = errors.New("bench: invalid plan")

// ErrVariantMismatch indicates the two Kahn variants disagreed on
// cycle-vs-acyclic for the same graph. It should never fire; surfacing it
// beats silently recording nonsense.
var ErrVariantMismatch = errors.New("bench: sort variants disagree")

// Validate checks the plan's shape. Generation parameters (densities,
// weight range) are re-checked by builder.Generate per trial; this catches
// only what would make the grid itself meaningless.
func (p Plan) Validate() error {
	if len(p.Ns) == 0 {
		return fmt.Errorf("no vertex counts: %w", ErrBadPlan)
	}
	for _, n := range p.Ns {
		if n < 0 {
			return fmt.Errorf("n=%d: %w", n, ErrBadPlan)
		}
	}
	if len(p.Densities) == 0 {
		return fmt.Errorf("no densities: %w", ErrBadPlan)
	}
	if p.Trials < 1 {
		return fmt.Errorf("trials=%d: %w", p.Trials, ErrBadPlan)
	}
	if p.Parallelism < 0 {
		return fmt.Errorf("parallelism=%d: %w", p.Parallelism, ErrBadPlan)
	}
	return nil
}

// parallelism resolves the effective concurrency bound.
func (p Plan) parallelism() int {
	if p.Parallelism > 0 {
		return p.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}
