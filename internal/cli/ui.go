package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/behrlich/twophase/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive sticker-entry front-end",
	Run: func(cmd *cobra.Command, args []string) {
		tables := loadTables()
		if _, err := tea.NewProgram(ui.NewModel(tables)).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
