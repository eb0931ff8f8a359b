// Package cmd provides the CLI commands for topobench.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "topobench",
	Short: "Random directed graphs and Kahn topological sorting",
	Long: `topobench generates random simple directed graphs, sorts them
topologically with Kahn's algorithm over either representation
(adjacency list or adjacency matrix), and benchmarks the two
variants against each other.

Graphs travel between commands as JSON adjacency lists: a mapping
from vertex key to bare targets (unweighted) or [target, weight]
pairs (weighted).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(benchCmd)
}
