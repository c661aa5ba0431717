package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/platform/tui"
	"github.com/rionnag/unblocked/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <level-id>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Up/Down/k/j  - Aim at a row
  Space/Enter  - Throw the held block
  R            - Restart the level
  Esc          - Back (three or more throws count as a failed attempt)
  Q/Ctrl+C     - Quit

Examples:
  unblocked play level-001
  unblocked play level-003 --fps 60`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := args[0]

	cfg := loadConfig()
	set := loadLevelSet(cfg)

	level, err := set.ByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'unblocked levels' to see available levels.")
		os.Exit(1)
	}
	if level.ID == levels.DemoID {
		fmt.Fprintln(os.Stderr, "Error: the demo level is watch-only.")
		fmt.Fprintln(os.Stderr, "Run 'unblocked watch --demo' to see it.")
		os.Exit(1)
	}

	store := openStore(cfg)
	defer closeStore(store)

	progress := &session.Progress{LevelID: level.ID}
	if store != nil {
		if p, loadErr := store.LoadProgress(level.ID); loadErr == nil {
			progress = p
		}
	}

	width, height := terminalSize()
	if err := tui.RunPlay(level, progress, store, cfg, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
		os.Exit(1)
	}
}
