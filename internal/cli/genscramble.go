package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/behrlich/twophase/internal/cube"
	"github.com/spf13/cobra"
)

var genScrambleCmd = &cobra.Command{
	Use:   "gen-scramble [length]",
	Short: "Print a random scramble",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		length := 18
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				fmt.Fprintf(os.Stderr, "Error: invalid length %q\n", args[0])
				os.Exit(1)
			}
			length = n
		}
		fmt.Println(cube.FormatMoves(cube.GenerateScramble(length)))
	},
}
