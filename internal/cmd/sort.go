package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/topobench/topobench/graphio"
	"github.com/topobench/topobench/kahn"
)

// Sort variant names accepted by --variant.
const (
	variantList   = "list"
	variantMatrix = "matrix"
)

var sortFlags struct {
	in      string
	variant string
	out     string
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Topologically sort a JSON adjacency list, or report CYCLE",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSort(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	f := sortCmd.Flags()
	f.StringVarP(&sortFlags.in, "in", "i", "", "input file (default: stdin)")
	f.StringVar(&sortFlags.variant, "variant", variantList, "algorithm variant: list or matrix")
	f.StringVarP(&sortFlags.out, "out", "o", "", "output file (default: stdout)")
}

// runSort loads the graph, runs the chosen Kahn variant and writes the
// order line (or CYCLE).
func runSort(stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if sortFlags.in != "" {
		f, err := os.Open(sortFlags.in)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	g, err := graphio.LoadAdjList(in)
	if err != nil {
		return err
	}

	var res kahn.Result
	switch sortFlags.variant {
	case variantList:
		res, err = kahn.SortList(g.List)
	case variantMatrix:
		res, err = kahn.SortMatrix(g.Matrix)
	default:
		return fmt.Errorf("unknown variant %q (want %s or %s)", sortFlags.variant, variantList, variantMatrix)
	}
	if err != nil {
		return err
	}

	out := stdout
	if sortFlags.out != "" {
		f, err := os.Create(sortFlags.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return graphio.WriteOrder(out, res)
}
