package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rionnag/unblocked/internal/session"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels and their status",
	Long:  `Shows the levels of the configured set with solve status and best throw counts.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	set := loadLevelSet(cfg)

	campaign := set.Campaign()
	if len(campaign) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Progress is optional here: the list still works without a database.
	byID := map[string]session.Progress{}
	if store := openStore(cfg); store != nil {
		if all, err := store.AllProgress(); err == nil {
			for _, p := range all {
				byID[p.LevelID] = p
			}
		}
		store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range campaign {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %-4s  %s\n", maxIDLen, "ID", "Status", "Best", "Name")
	fmt.Printf("  %-*s  %-6s  %-4s  %s\n", maxIDLen, "--", "------", "----", "----")

	solved := 0
	for _, l := range campaign {
		p := byID[l.ID]
		status := "-"
		best := "-"
		if p.Wins > 0 {
			solved++
			status = "solved"
			best = fmt.Sprintf("%d", p.BestThrows)
		}
		fmt.Printf("  %-*s  %-6s  %-4s  %s\n", maxIDLen, l.ID, status, best, l.Name)
	}

	fmt.Println()
	fmt.Printf("Solved %d/%d (%d%%)\n", solved, len(campaign), solved*100/len(campaign))
	fmt.Println()
	fmt.Println("Run 'unblocked play <id>' to play a level.")
}
