// Package main provides the entry point for the topobench CLI.
package main

import (
	"os"

	"github.com/topobench/topobench/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Print the error ourselves; SilenceErrors suppresses Cobra output.
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
