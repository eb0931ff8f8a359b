// SPDX-License-Identifier: MIT
// Package: topobench/graphio
//
// adjlist.go — the JSON adjacency-list encoding.
//
// Contract:
//   - SaveAdjList and LoadAdjList are inverses over well-formed graphs:
//     the loaded list, matrix and Weighted flag match the saved graph.
//   - Writers emit keys in ascending vertex order with stable indentation.
//   - Loaders validate structurally (keys cover 0..n-1 exactly, uniform
//     entry form, weights >= 1) and then semantically via digraph
//     validation while rebuilding the matrix.

package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/topobench/topobench/digraph"
)

const pairLen = 2 // a weighted entry is exactly [target, weight]

// SaveAdjList writes g's adjacency list as JSON. Weighted graphs emit
// [target, weight] pairs, unweighted graphs bare targets.
func SaveAdjList(w io.Writer, g *digraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	n := len(g.List)
	var buf bytes.Buffer
	if n == 0 {
		buf.WriteString("{}\n")
		_, err := w.Write(buf.Bytes())
		return err
	}

	buf.WriteString("{\n")
	for u := 0; u < n; u++ {
		entries := make([]any, 0, len(g.List[u]))
		for _, e := range g.List[u] {
			if g.Weighted {
				entries = append(entries, [pairLen]int{e.To, e.Weight})
			} else {
				entries = append(entries, e.To)
			}
		}
		row, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("graphio: marshal vertex %d: %w", u, err)
		}
		fmt.Fprintf(&buf, "  %q: %s", strconv.Itoa(u), row)
		if u < n-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// LoadAdjList parses the JSON adjacency-list form and rebuilds the full
// Graph, matrix included. The entry form (bare vs pair) determines the
// Weighted flag; an empty document loads as an unweighted empty graph.
func LoadAdjList(r io.Reader) (*digraph.Graph, error) {
	var raw map[string][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	n := len(raw)
	list := make(digraph.AdjList, n)
	filled := make([]bool, n)
	sawBare, sawPair := false, false

	for key, entries := range raw {
		u, err := strconv.Atoi(key)
		if err != nil || u < 0 || u >= n {
			return nil, fmt.Errorf("graphio: key %q with n=%d: %w", key, n, ErrBadVertexKey)
		}
		if filled[u] {
			// Two keys normalized to the same vertex (e.g. "1" and "01").
			return nil, fmt.Errorf("graphio: key %q repeats vertex %d: %w", key, u, ErrBadVertexKey)
		}
		filled[u] = true

		neighbors := make([]digraph.Neighbor, 0, len(entries))
		for _, entry := range entries {
			var to int
			if err = json.Unmarshal(entry, &to); err == nil {
				sawBare = true
				neighbors = append(neighbors, digraph.Neighbor{To: to, Weight: digraph.DefaultWeight})
				continue
			}
			var pair []int
			if err = json.Unmarshal(entry, &pair); err != nil || len(pair) != pairLen {
				return nil, fmt.Errorf("graphio: vertex %d entry %s: %w", u, entry, ErrMalformedEntry)
			}
			if pair[1] < digraph.DefaultWeight {
				return nil, fmt.Errorf("graphio: vertex %d entry %s: weight < %d: %w",
					u, entry, digraph.DefaultWeight, ErrMalformedEntry)
			}
			sawPair = true
			neighbors = append(neighbors, digraph.Neighbor{To: pair[0], Weight: pair[1]})
		}
		if len(neighbors) > 0 {
			list[u] = neighbors
		}
	}

	if sawBare && sawPair {
		return nil, fmt.Errorf("graphio: mixed bare and weighted entries: %w", ErrMalformedEntry)
	}

	// Rebuilding the matrix doubles as semantic validation of the list.
	mat, err := digraph.ListToMatrix(list)
	if err != nil {
		return nil, err
	}
	return &digraph.Graph{N: n, Weighted: sawPair, List: list, Matrix: mat}, nil
}

// WriteAdjListFile saves g to path, truncating any existing file.
func WriteAdjListFile(path string, g *digraph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	if err = SaveAdjList(f, g); err != nil {
		return err
	}
	return f.Close()
}

// ReadAdjListFile loads a graph previously saved with WriteAdjListFile.
func ReadAdjListFile(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadAdjList(f)
}
