// SPDX-License-Identifier: MIT
// Package: topobench/bench
//
// seed.go — deterministic per-trial seed derivation.
//
// Every trial must own an independent RNG stream (math/rand.Rand is not
// goroutine-safe, and sharing one would also make outcomes depend on
// scheduling). Streams are derived from the plan seed and the trial's grid
// index with a SplitMix64-style finalizer: strong bit diffusion, so
// adjacent indices produce uncorrelated seeds, and pure arithmetic, so the
// same plan always yields the same streams.

package bench

// splitmix64Gamma and friends are the canonical SplitMix64 constants
// (Vigna 2014).
const (
	splitmix64Gamma = 0x9e3779b97f4a7c15
	splitmix64Mul1  = 0xbf58476d1ce4e5b9
	splitmix64Mul2  = 0x94d049bb133111eb
)

// deriveSeed mixes a parent seed and a stream index into a new 64-bit seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + splitmix64Gamma)
	x += splitmix64Gamma
	x = (x ^ (x >> 30)) * splitmix64Mul1
	x = (x ^ (x >> 27)) * splitmix64Mul2
	x ^= x >> 31
	return int64(x)
}
