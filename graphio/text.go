// SPDX-License-Identifier: MIT
// Package: topobench/graphio
//
// text.go — plain-text artifacts: topological orders and adjacency
// listings. These are write-only outputs for humans and for the
// experiment harness; nothing parses them back.

package graphio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/topobench/topobench/digraph"
	"github.com/topobench/topobench/kahn"
)

// CycleLine is the literal written in place of an order for a non-DAG.
const CycleLine = "CYCLE"

// FormatOrder renders a sort outcome as a single line: space-separated
// vertices, or CycleLine when the graph is cyclic.
func FormatOrder(res kahn.Result) string {
	if !res.Acyclic {
		return CycleLine + "\n"
	}
	parts := make([]string, len(res.Order))
	for i, v := range res.Order {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ") + "\n"
}

// WriteOrder writes FormatOrder(res) to w.
func WriteOrder(w io.Writer, res kahn.Result) error {
	_, err := io.WriteString(w, FormatOrder(res))
	return err
}

// FormatAdjText renders a human-readable adjacency listing, one vertex per
// line: "u: v1 v2" for unweighted graphs, "u: v1(w1) v2(w2)" for weighted.
func FormatAdjText(g *digraph.Graph) string {
	var b strings.Builder
	for u := range g.List {
		b.WriteString(strconv.Itoa(u))
		b.WriteByte(':')
		for _, e := range g.List[u] {
			if g.Weighted {
				fmt.Fprintf(&b, " %d(%d)", e.To, e.Weight)
			} else {
				fmt.Fprintf(&b, " %d", e.To)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
