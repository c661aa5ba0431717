package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameAction represents an in-level action derived from input.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionUp
	GameActionDown
	GameActionThrow
	GameActionRestart
	GameActionBack
	GameActionQuit
)

// MapKeyToGameAction translates a key to an in-level action.
func (km *KeyMapper) MapKeyToGameAction(msg tea.KeyMsg) GameAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return GameActionQuit
	case "w", "up", "k":
		return GameActionUp
	case "s", "down", "j":
		return GameActionDown
	case " ", "enter":
		return GameActionThrow
	case "r":
		return GameActionRestart
	case "b", "esc":
		return GameActionBack
	}
	return GameActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionWatch
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "f1", "v":
		return MenuActionWatch
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
