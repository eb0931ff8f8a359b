// SPDX-License-Identifier: MIT
// Package: topobench/bench
//
// csv.go — CSV rendering of measurement records.

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column set; plotting scripts key on these names.
var csvHeader = []string{
	"n", "density", "trial", "seed", "edges", "acyclic", "list_ns", "matrix_ns",
}

// WriteCSV renders records with a header row. Densities are written as
// given in the plan (fractional or percent form), not renormalized.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.N),
			strconv.FormatFloat(rec.Density, 'g', -1, 64),
			strconv.Itoa(rec.Trial),
			strconv.FormatInt(rec.Seed, 10),
			strconv.Itoa(rec.Edges),
			strconv.FormatBool(rec.Acyclic),
			strconv.FormatInt(rec.ListNs, 10),
			strconv.FormatInt(rec.MatrixNs, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
