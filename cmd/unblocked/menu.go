package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rionnag/unblocked/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive level picker",
	Long: `Start the puzzle in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the selected level,
V to watch its stored replay, Tab to open the progress table.
After a level ends, you return to the picker.

Examples:
  unblocked menu
  unblocked menu --fps 60
  unblocked menu --levels ./my-levels`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	set := loadLevelSet(cfg)

	store := openStore(cfg)
	defer closeStore(store)

	width, height := terminalSize()
	if err := tui.RunApp(store, set, cfg, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize returns the current terminal size, with fallbacks.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
