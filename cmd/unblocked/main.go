// unblocked is a terminal block-throwing puzzle.
//
// Usage:
//
//	unblocked menu             - Interactive level picker
//	unblocked play <level>     - Play a specific level
//	unblocked watch <level>    - Watch the stored solution replay
//	unblocked levels           - List levels and progress
//	unblocked scores           - Show the progress table
//	unblocked serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Database path (default: ~/.unblocked/unblocked.db)
//	--levels <dir>   - Custom level directory (default: built-in set)
//	--fps <rate>     - Tick rate (default: 30)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rionnag/unblocked/internal/config"
	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagFPS       int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "unblocked",
	Short: "Unblocked - a block-throwing puzzle in your terminal",
	Long: `Unblocked is a terminal puzzle: throw your block at a row, matching
blocks annihilate, and you pick up whatever stopped the throw. Clear
the board to win.

Available commands:
  menu     - Interactive level picker
  play     - Play a specific level directly
  watch    - Watch the stored solution replay for a level
  levels   - List levels and their status
  scores   - View the progress table
  serve    - Start SSH server for remote play

Examples:
  unblocked menu
  unblocked play level-001
  unblocked watch level-001
  unblocked watch --demo
  unblocked serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom level files (default: built-in set)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (default from config)")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the application config and applies flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Database = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.LevelsDir = flagLevelsDir
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	cfg.Normalize()
	return cfg
}

// loadLevelSet loads the configured level set: a custom directory when
// set, the built-in set otherwise.
func loadLevelSet(cfg config.Config) *levels.Set {
	var (
		set *levels.Set
		err error
	)
	if cfg.LevelsDir != "" {
		set, err = levels.NewLoader(cfg.LevelsDir).LoadAll()
	} else {
		set, err = levels.DefaultSet()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	return set
}

// openStore opens the database, or returns nil with a warning so the
// puzzle still works without persistence.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
