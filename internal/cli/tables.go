package cli

import (
	"fmt"
	"os"

	"github.com/behrlich/twophase/internal/cache"
	"github.com/behrlich/twophase/internal/cube"
)

// loadTables loads the persisted table cache, exiting the process with a
// nonzero code if it's missing or truncated. An absent cache is a fatal
// startup error for every command except init-cache itself, not something
// solve/benchmark/ui should paper over by rebuilding silently mid-command.
func loadTables() *cube.Tables {
	dir, err := cache.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tables, err := cache.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'cube init-cache' first.\n", err)
		os.Exit(1)
	}
	return tables
}
