package cli

import (
	"fmt"
	"os"

	"github.com/behrlich/twophase/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble> [phase1|phase2]",
	Short: "Solve a scrambled cube",
	Long: `solve parses scramble, applies it to a fresh cube, and prints the move
list that returns it to solved. With an optional phase1 or phase2 argument
it runs and prints only that phase of the search, starting from the
scrambled cube's own coordinates for that phase.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		moves, err := cube.ParseScramble(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		c := cube.NewCubieCube()
		c.ApplyAll(moves)

		tables := loadTables()
		solver := cube.NewSolver(tables)

		if len(args) == 2 {
			runSinglePhase(solver, c, args[1])
			return
		}

		solution, err := solver.Solve(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(cube.FormatMoves(solution))
	},
}

func runSinglePhase(solver *cube.Solver, c cube.CubieCube, phase string) {
	switch phase {
	case "phase1":
		solution := solver.Phase1(cube.Phase1CubeFrom(c))
		fmt.Println(cube.FormatMoves(solution))
	case "phase2":
		phase2, err := cube.Phase2CubeFrom(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		solution := solver.Phase2(phase2)
		fmt.Println(cube.FormatMoves(solution))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown phase %q (want phase1 or phase2)\n", phase)
		os.Exit(1)
	}
}
