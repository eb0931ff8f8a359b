// Package topobench generates random simple directed graphs and orders them
// topologically with Kahn's algorithm, implemented twice: once over an
// adjacency list and once over an adjacency matrix.
//
// The point of the pairing is comparative: the list variant runs in O(V+E)
// while the matrix variant runs in O(V²) no matter how sparse the graph is.
// The bench package measures exactly that asymmetry over a grid of sizes and
// densities; everything else exists to feed it.
//
// The module is organized under flat subpackages:
//
//	digraph/  — canonical representations (adjacency list, adjacency matrix)
//	            and the lossless converters between them
//	builder/  — Erdős–Rényi style generation with exact edge-count targeting,
//	            density given as a fraction or a percent
//	kahn/     — both Kahn variants; a cycle is a value, never an error
//	graphio/  — the JSON adjacency-list format and plain-text artifacts
//	bench/    — seeded, parallel timing experiments with CSV output
//
// A command-line front end lives in cmd/topobench.
//
// Quick example:
//
//	g, err := builder.Generate(100, 0.05, builder.WithSeed(42))
//	if err != nil { ... }
//	res, err := kahn.SortList(g.List)
//	if err != nil { ... }
//	if res.Acyclic {
//		fmt.Println(res.Order) // every edge source precedes its target
//	}
//
// All algorithm packages are pure: no goroutines, no globals, no logging.
// Determinism is explicit — random generation is driven by an owned
// math/rand instance, seeded by the caller.
package topobench
