package cli

import (
	"fmt"
	"os"

	"github.com/behrlich/twophase/internal/cache"
	"github.com/behrlich/twophase/internal/cube"
	"github.com/spf13/cobra"
)

// initCacheModeNames are the ten table names init-cache accepts as an
// optional positional mode.
var initCacheModeNames = []string{
	"phase1", "phase2", "ud-slice-combinations", "ud-phase2-permutations",
	"edge-permutations", "corner-permutations", "ud-permutations",
	"corner-orientation", "edge-orientation", "bit-lookup-table",
}

var initCacheCmd = &cobra.Command{
	Use:   "init-cache [mode]",
	Short: "Build the solver's transition and pruning tables",
	Long: `init-cache builds every table the solver needs to run and writes it to
the per-user cache directory. With or without a mode it builds, logs and
saves every table; a mode name is checked against the ten known modes and
echoed back when done, but does not restrict what is built, logged or
written.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode := ""
		if len(args) == 1 {
			mode = args[0]
			if !validInitCacheMode(mode) {
				fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want one of %v)\n", mode, initCacheModeNames)
				os.Exit(1)
			}
		}

		dir, err := cache.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Building tables...")
		tables := cube.BuildTables()
		fmt.Println("  corner-orientation")
		fmt.Println("  edge-orientation")
		fmt.Println("  ud-slice-combinations")
		fmt.Println("  ud-phase2-permutations")
		fmt.Println("  edge-permutations")
		fmt.Println("  corner-permutations")
		fmt.Println("  phase1 pruning (corners, edges+ud)")
		fmt.Println("  phase2 pruning (corners, edges+ud)")

		if err := cache.Save(dir, tables); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if mode != "" {
			fmt.Printf("Built %s (and the rest of the cache alongside it)\n", mode)
		}
		fmt.Printf("Tables written to %s\n", dir)
	},
}

func validInitCacheMode(mode string) bool {
	for _, m := range initCacheModeNames {
		if m == mode {
			return true
		}
	}
	return false
}
