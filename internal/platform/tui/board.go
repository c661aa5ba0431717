package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rionnag/unblocked/internal/puzzle"
)

// renderBoard draws the board frame, the cells and the player marker.
// The player sits to the right of the grid and throws leftward, so the
// marker is drawn past the right border on the player's row.
func renderBoard(snap puzzle.Snapshot, theme Theme) string {
	var b strings.Builder

	edge := "*" + strings.Repeat("--", snap.Cols) + "-*"
	b.WriteString(theme.Frame.Render(edge))
	b.WriteString("\n")

	for r := 0; r < snap.Rows; r++ {
		b.WriteString(theme.Frame.Render("|"))
		for c := 0; c < snap.Cols; c++ {
			b.WriteString(" ")
			kind := snap.Cells[r][c]
			if kind == puzzle.KindNone {
				b.WriteString(theme.Empty.Render("."))
			} else {
				b.WriteString(blockStyle(theme, kind).Render(kind.String()))
			}
		}
		b.WriteString(" ")
		b.WriteString(theme.Frame.Render("|"))

		if r == snap.PlayerRow {
			b.WriteString(" ")
			b.WriteString(renderPlayer(snap.Player, theme))
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Frame.Render(edge))
	return b.String()
}

// renderPlayer draws the held block marker, e.g. "<(S)".
func renderPlayer(held puzzle.Kind, theme Theme) string {
	if held == puzzle.KindNone {
		return theme.PlayerDry.Render("<( )")
	}
	style := blockStyle(theme, held)
	return theme.Player.Render("<(") + style.Render(held.String()) + theme.Player.Render(")")
}

func blockStyle(theme Theme, kind puzzle.Kind) lipgloss.Style {
	if st, ok := theme.Blocks[kind]; ok {
		return st
	}
	return theme.Empty
}
