package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rionnag/unblocked/internal/puzzle"
)

// YAMLLevel is the YAML structure for a single-level file.
type YAMLLevel struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Start    string   `yaml:"start,omitempty"`     // player's first block rune, default '?'
	StartRow *int     `yaml:"start_row,omitempty"` // default: bottom row
	Grid     []string `yaml:"grid"`                // one string per row, one rune per cell
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("yaml level has no id")
	}

	start := puzzle.KindJoker
	if yl.Start != "" {
		start = puzzle.ParseKind(rune(yl.Start[0]))
		if start == puzzle.KindNone {
			return Level{}, fmt.Errorf("yaml level %s: bad start block %q", yl.ID, yl.Start)
		}
	}

	startRow := -1
	if yl.StartRow != nil {
		startRow = *yl.StartRow
	}

	grid := make([][]puzzle.Kind, 0, len(yl.Grid))
	for _, line := range yl.Grid {
		row := make([]puzzle.Kind, 0, len(line))
		for _, r := range line {
			row = append(row, puzzle.ParseKind(r))
		}
		grid = append(grid, row)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Start:    start,
		StartRow: startRow,
		Grid:     grid,
	}, nil
}
