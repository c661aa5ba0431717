package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rionnag/unblocked/internal/puzzle"
)

// Theme contains all configurable visual styles.
type Theme struct {
	// Block colors by kind
	Blocks map[puzzle.Kind]lipgloss.Style
	Empty  lipgloss.Style

	// Board frame and player marker
	Frame     lipgloss.Style
	Player    lipgloss.Style
	PlayerDry lipgloss.Style // player with nothing left to throw
	ActiveRow lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemSolved  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Blocks: map[puzzle.Kind]lipgloss.Style{
			puzzle.KindS:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
			puzzle.KindX:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
			puzzle.KindO:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
			puzzle.KindT:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
			puzzle.KindZ:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Medium purple
			puzzle.KindW:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // Orange
			puzzle.KindJoker: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		},
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray

		Frame:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // Medium gray
		Player:    lipgloss.NewStyle().Bold(true),
		PlayerDry: lipgloss.NewStyle().Foreground(lipgloss.Color("88")), // Dark red
		ActiveRow: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		OverlayBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		OverlayTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Blocks = map[puzzle.Kind]lipgloss.Style{
		puzzle.KindS:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		puzzle.KindX:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		puzzle.KindO:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		puzzle.KindT:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		puzzle.KindZ:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		puzzle.KindW:     lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		puzzle.KindJoker: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	}
	return theme
}

// Global theme variable (can be changed at runtime)
var activeTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	activeTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return activeTheme
}
