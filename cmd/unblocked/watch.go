package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rionnag/unblocked/internal/platform/tui"
	"github.com/rionnag/unblocked/internal/replay"
	"github.com/rionnag/unblocked/internal/session"
)

var flagDemo bool

var watchCmd = &cobra.Command{
	Use:   "watch [level-id]",
	Short: "Watch the stored solution replay for a level",
	Long: `Play back the replay recorded when a level was solved.

Watching a replay before solving the level marks the level as
replay-assisted in the progress table.

Controls:
  F/Tab     - Toggle fast-forward
  Esc       - Back
  Q/Ctrl+C  - Quit

Examples:
  unblocked watch level-001
  unblocked watch --demo`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&flagDemo, "demo", false, "Watch the built-in demo replay")
}

func runWatch(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	set := loadLevelSet(cfg)

	if flagDemo {
		demo, ok := set.Demo()
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: this level set has no demo level.")
			os.Exit(1)
		}
		width, height := terminalSize()
		// The demo never touches stored progress.
		if err := tui.RunWatch(demo, nil, session.DemoRecord(), nil, cfg, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: a level id is required (or use --demo).")
		os.Exit(1)
	}
	levelID := args[0]

	level, err := set.ByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'unblocked levels' to see available levels.")
		os.Exit(1)
	}

	store := openStore(cfg)
	defer closeStore(store)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: no database, no stored replays.")
		os.Exit(1)
	}

	rec, err := store.LoadReplay(level.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "No replay for %q yet. Solve the level first.\n", levelID)
		os.Exit(1)
	}

	progress := &session.Progress{LevelID: level.ID}
	if p, loadErr := store.LoadProgress(level.ID); loadErr == nil {
		progress = p
	}

	width, height := terminalSize()
	if err := tui.RunWatch(level, progress, *rec, store, cfg, width, height); err != nil {
		if errors.Is(err, replay.ErrUnsupportedVersion) {
			fmt.Fprintf(os.Stderr, "Error: the stored replay uses an unsupported format version.\n")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}
