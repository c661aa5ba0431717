package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagClearLevel string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the progress table",
	Long: `Display attempts, wins, best throw counts and first-win dates for
every level that has been played.

Levels marked "help" had their replay watched before the first solve.

Examples:
  unblocked scores
  unblocked scores --clear level-003   # forget one level's progress and replay`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagClearLevel, "clear", "", "Delete stored progress and replay for a level")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store := openStore(cfg)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagClearLevel != "" {
		if err := store.ClearLevel(flagClearLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing level: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared progress and replay for %s.\n", flagClearLevel)
		return
	}

	all, err := store.AllProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
		os.Exit(1)
	}

	set := loadLevelSet(cfg)

	fmt.Println("Progress:")
	fmt.Println()

	if len(all) == 0 {
		fmt.Println("Nothing played yet.")
		fmt.Println()
		fmt.Println("Run 'unblocked menu' to start.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %-5s  %-5s  %-16s  %s\n", "Level", "Attempts", "Wins", "Best", "First win", "Help")
	fmt.Printf("  %-12s  %-8s  %-5s  %-5s  %-16s  %s\n", "-----", "--------", "----", "----", "---------", "----")

	solved := 0
	for _, p := range all {
		if p.Wins > 0 {
			solved++
		}
		best := "-"
		if p.BestThrows > 0 {
			best = fmt.Sprintf("%d", p.BestThrows)
		}
		firstWin := "-"
		if !p.FirstWin.IsZero() {
			firstWin = p.FirstWin.Format("2006-01-02 15:04")
		}
		helpUsed := ""
		if p.HelpUsed {
			helpUsed = "help"
		}
		fmt.Printf("  %-12s  %-8d  %-5d  %-5s  %-16s  %s\n", p.LevelID, p.Attempts, p.Wins, best, firstWin, helpUsed)
	}

	fmt.Println()
	total := set.Count()
	if total > 0 {
		fmt.Printf("Solved %d/%d (%d%%)\n", solved, total, solved*100/total)
	}
}
