package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/topobench/topobench/bench"
)

var benchFlags struct {
	plan        string
	out         string
	parallelism int
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a timing experiment plan and emit CSV",
	Long: `bench loads a YAML experiment plan, runs every (n, density, trial)
cell with a derived deterministic seed, times both Kahn variants on
each generated graph and writes one CSV row per trial.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd)
	},
}

func init() {
	f := benchCmd.Flags()
	f.StringVarP(&benchFlags.plan, "plan", "p", "", "YAML plan file (required)")
	f.StringVarP(&benchFlags.out, "out", "o", "", "output CSV file (default: stdout)")
	f.IntVar(&benchFlags.parallelism, "parallelism", 0, "override plan parallelism (0: keep plan value)")
	_ = benchCmd.MarkFlagRequired("plan")
}

func runBench(cmd *cobra.Command) error {
	plan, err := bench.LoadPlan(benchFlags.plan)
	if err != nil {
		return err
	}
	if benchFlags.parallelism > 0 {
		plan.Parallelism = benchFlags.parallelism
	}

	records, err := bench.Run(cmd.Context(), plan)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if benchFlags.out != "" {
		f, err := os.Create(benchFlags.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return bench.WriteCSV(out, records)
}
