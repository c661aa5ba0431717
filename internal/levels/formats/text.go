// Package formats provides pluggable level file format parsers.
package formats

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/rionnag/unblocked/internal/puzzle"
)

// Level is a parsed level before validation.
type Level struct {
	ID       string
	Name     string
	Start    puzzle.Kind
	StartRow int // -1 means "default" (bottom row)
	Grid     [][]puzzle.Kind
}

// ParseText parses the classic multi-level text format. Grammar:
//
//	;            comment line, ignored
//	# any text   starts a new level; the text becomes the level's name
//	start:R      optional; rune R is the player's first block (default '?')
//	*****        corner decoration, accepted and ignored
//	SXO?..       a puzzle row, one rune per cell ('.' or space is empty)
//
// Levels are assigned sequential IDs from startIndex ("level-000",
// "level-001", ...). Index 0 is by convention the demo level.
func ParseText(data []byte, startIndex int) []Level {
	var out []Level
	cur := Level{Start: puzzle.KindJoker, StartRow: -1}
	flush := func() {
		if len(cur.Grid) == 0 {
			return
		}
		cur.ID = textLevelID(startIndex + len(out))
		out = append(out, cur)
		cur = Level{Start: puzzle.KindJoker, StartRow: -1}
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, "#"):
			flush()
			cur.Name = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, "start:"):
			s := strings.TrimSpace(strings.TrimPrefix(line, "start:"))
			if s != "" {
				cur.Start = puzzle.ParseKind(rune(s[0]))
				if cur.Start == puzzle.KindNone {
					cur.Start = puzzle.KindJoker
				}
			}
		case strings.HasPrefix(line, "*"):
			// Decorative corner wall lines; not part of the grid.
			continue
		default:
			row := make([]puzzle.Kind, 0, len(line))
			for _, r := range line {
				row = append(row, puzzle.ParseKind(r))
			}
			cur.Grid = append(cur.Grid, row)
		}
	}
	flush()
	return out
}

func textLevelID(n int) string {
	// Zero-padded so lexicographic order matches play order.
	id := []byte{'0', '0', '0'}
	for i := 2; i >= 0 && n > 0; i-- {
		id[i] = byte('0' + n%10)
		n /= 10
	}
	return "level-" + string(id)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml"}
}
