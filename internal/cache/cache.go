// Package cache persists the solver's transition and pruning tables to disk
// so a build paid for once doesn't have to be paid again on every run.
package cache

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/behrlich/twophase/internal/cube"
)

// DefaultDir returns the per-user directory tables are cached in, creating
// it if necessary.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cache: resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".twophase", "tables")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cache: create cache directory: %w", err)
	}
	return dir, nil
}

// table names the on-disk file for each table in cube.Tables, one file per
// table.
type table string

const (
	tableCornerOrientation  table = "corner-orientation.bin"
	tableEdgeOrientation    table = "edge-orientation.bin"
	tableUDSliceCombination table = "ud-slice-combinations.bin"
	tableUDSliceMove        table = "ud-combination-move.bin"
	tableCornerPermutation  table = "corner-permutations.bin"
	tableEdgePermutation    table = "edge-permutations.bin"
	tableUDPermutation      table = "ud-permutations.bin"
	tablePhase1PruneCorners table = "phase1-prune-corners.bin"
	tablePhase1PruneEdgesUD table = "phase1-prune-edges-ud.bin"
	tablePhase2PruneCorners table = "phase2-prune-corners.bin"
	tablePhase2PruneEdgesUD table = "phase2-prune-edges-ud.bin"
)

var allTables = []table{
	tableCornerOrientation, tableEdgeOrientation, tableUDSliceCombination, tableUDSliceMove,
	tableCornerPermutation, tableEdgePermutation, tableUDPermutation,
	tablePhase1PruneCorners, tablePhase1PruneEdgesUD, tablePhase2PruneCorners, tablePhase2PruneEdgesUD,
}

func writeTable(dir string, name table, data any) error {
	f, err := os.Create(filepath.Join(dir, string(name)))
	if err != nil {
		return fmt.Errorf("cache: create %s: %w", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("cache: encode %s: %w", name, err)
	}
	return w.Flush()
}

func readTable(dir string, name table, data any) error {
	f, err := os.Open(filepath.Join(dir, string(name)))
	if err != nil {
		return fmt.Errorf("%s: %w", name, cube.ErrMissingTable)
	}
	defer f.Close()

	if err := binary.Read(bufio.NewReader(f), binary.LittleEndian, data); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return fmt.Errorf("%s is truncated: %w", name, cube.ErrMissingTable)
		}
		return fmt.Errorf("cache: decode %s: %w", name, err)
	}
	return nil
}

// Save writes every table in t to dir, one file per table.
func Save(dir string, t *cube.Tables) error {
	writes := []struct {
		name table
		data any
	}{
		{tableCornerOrientation, t.CornerOrientationMove},
		{tableEdgeOrientation, t.EdgeOrientationMove},
		{tableUDSliceCombination, t.UDSliceCombinations},
		{tableUDSliceMove, t.UDSliceCombinationMove},
		{tableCornerPermutation, t.CornerPermutationMove},
		{tableEdgePermutation, t.EdgePermutationMove},
		{tableUDPermutation, t.UDSlicePermutationMove},
		{tablePhase1PruneCorners, t.Phase1PruneCorners},
		{tablePhase1PruneEdgesUD, t.Phase1PruneEdgesUD},
		{tablePhase2PruneCorners, t.Phase2PruneCorners},
		{tablePhase2PruneEdgesUD, t.Phase2PruneEdgesUD},
	}
	for _, w := range writes {
		if err := writeTable(dir, w.name, w.data); err != nil {
			return err
		}
	}
	return nil
}

// Load reads every table back from dir into a fresh cube.Tables. It returns
// an error wrapping cube.ErrMissingTable if any file is absent or shorter
// than expected — a partial cache is treated the same as no cache.
func Load(dir string) (*cube.Tables, error) {
	t := &cube.Tables{
		CornerOrientationMove:  make([]uint16, 2187*18),
		EdgeOrientationMove:    make([]uint16, 2048*18),
		UDSliceCombinationMove: make([]uint16, 495*18),
		CornerPermutationMove:  make([]uint16, 40320*10),
		EdgePermutationMove:    make([]uint16, 40320*10),
		UDSlicePermutationMove: make([]uint8, 24*4),
		Phase1PruneCorners:     make([]uint8, 2187),
		Phase1PruneEdgesUD:     make([]uint8, 2048*495),
		Phase2PruneCorners:     make([]uint8, 40320),
		Phase2PruneEdgesUD:     make([]uint8, 40320*24),
	}

	reads := []struct {
		name table
		data any
	}{
		{tableCornerOrientation, t.CornerOrientationMove},
		{tableEdgeOrientation, t.EdgeOrientationMove},
		{tableUDSliceCombination, &t.UDSliceCombinations},
		{tableUDSliceMove, t.UDSliceCombinationMove},
		{tableCornerPermutation, t.CornerPermutationMove},
		{tableEdgePermutation, t.EdgePermutationMove},
		{tableUDPermutation, t.UDSlicePermutationMove},
		{tablePhase1PruneCorners, t.Phase1PruneCorners},
		{tablePhase1PruneEdgesUD, t.Phase1PruneEdgesUD},
		{tablePhase2PruneCorners, t.Phase2PruneCorners},
		{tablePhase2PruneEdgesUD, t.Phase2PruneEdgesUD},
	}
	for _, r := range reads {
		if err := readTable(dir, r.name, r.data); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Exists reports whether every table file is present in dir.
func Exists(dir string) bool {
	for _, name := range allTables {
		if _, err := os.Stat(filepath.Join(dir, string(name))); err != nil {
			return false
		}
	}
	return true
}
