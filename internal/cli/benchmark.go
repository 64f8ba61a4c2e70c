package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/behrlich/twophase/internal/cube"
	"github.com/spf13/cobra"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Solve many random scrambles and report timing and move-count stats",
	Run: func(cmd *cobra.Command, args []string) {
		amount, _ := cmd.Flags().GetInt("amount")
		length, _ := cmd.Flags().GetInt("length")

		tables := loadTables()
		solver := cube.NewSolver(tables)

		var totalElapsed time.Duration
		var totalMoves, maxMoves int
		var maxElapsed time.Duration

		for i := 0; i < amount; i++ {
			c := cube.NewCubieCube()
			c.ApplyAll(cube.GenerateScramble(length))

			start := time.Now()
			solution, err := solver.Solve(c)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			totalElapsed += elapsed
			totalMoves += len(solution)
			if elapsed > maxElapsed {
				maxElapsed = elapsed
			}
			if len(solution) > maxMoves {
				maxMoves = len(solution)
			}
		}

		fmt.Printf("Solved %d cubes (scramble length %d)\n", amount, length)
		fmt.Printf("Mean time:  %v\n", totalElapsed/time.Duration(amount))
		fmt.Printf("Max time:   %v\n", maxElapsed)
		fmt.Printf("Mean moves: %.2f\n", float64(totalMoves)/float64(amount))
		fmt.Printf("Max moves:  %d\n", maxMoves)
	},
}

func init() {
	benchmarkCmd.Flags().IntP("amount", "a", 100, "number of scrambles to solve")
	benchmarkCmd.Flags().IntP("length", "l", 18, "scramble length")
}
