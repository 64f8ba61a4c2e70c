// Package cli wires the solver's five commands onto a Cobra root command:
// init-cache, gen-scramble, solve, benchmark, and ui.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "cube",
	Short:   "Kociemba two-phase Rubik's cube solver",
	Long:    `cube solves a scrambled 3x3x3 Rubik's cube using Kociemba's two-phase IDA* algorithm.`,
	Version: "1.0.0",
}

// Execute runs the root command; cmd/cube's main is the only caller.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCacheCmd)
	rootCmd.AddCommand(genScrambleCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(uiCmd)
}
