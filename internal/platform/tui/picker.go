package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/session"
	"github.com/rionnag/unblocked/internal/storage"
)

// PickerItem is one selectable level in the picker.
type PickerItem struct {
	Level    levels.Level
	Solved   bool
	Best     int
	HelpUsed bool
}

// PickerModel is the Bubble Tea model for the level picker menu.
type PickerModel struct {
	items          []PickerItem
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *PickerItem // set when user selects a level
	watch          bool        // selection is "watch its replay"
	openScoreboard bool
}

// NewPickerModel creates a picker over the campaign levels, annotated
// with stored progress.
func NewPickerModel(set *levels.Set, store *storage.Store, width, height int) PickerModel {
	byID := map[string]session.Progress{}
	if store != nil {
		if all, err := store.AllProgress(); err == nil {
			for _, p := range all {
				byID[p.LevelID] = p
			}
		}
	}

	campaign := set.Campaign()
	items := make([]PickerItem, 0, len(campaign))
	for _, l := range campaign {
		p := byID[l.ID]
		items = append(items, PickerItem{
			Level:    l,
			Solved:   p.Wins > 0,
			Best:     p.BestThrows,
			HelpUsed: p.HelpUsed,
		})
	}

	return PickerModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionWatch:
		// Only solved levels have a stored replay to show.
		if len(m.items) > 0 && m.items[m.cursor].Solved {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.watch = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("U N B L O C K E D"), m.width))
	b.WriteString("\n\n")

	solved := 0
	for _, it := range m.items {
		if it.Solved {
			solved++
		}
	}
	subtitle := fmt.Sprintf("Solved %d/%d (%d%%)", solved, len(m.items), percent(solved, len(m.items)))
	b.WriteString(centerText(theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}

		mark := " "
		note := ""
		if item.Solved {
			mark = theme.MenuItemSolved.Render("*")
			note = fmt.Sprintf("  best %d", item.Best)
			if item.HelpUsed {
				note += " (watched)"
			}
		}

		line := fmt.Sprintf("%s%s %s%s", cursor, mark, style.Render(item.Level.Name), theme.MenuDescription.Render(note))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Enter: Play  |  V: Watch replay  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(theme.HUDControls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

// Selected returns the selected item, or nil if none selected.
func (m PickerModel) Selected() *PickerItem {
	return m.selected
}

// WantsWatch returns true if the selection is a replay request.
func (m PickerModel) WantsWatch() bool {
	return m.watch
}

// WantsScoreboard returns true if the user requested the scoreboard.
func (m PickerModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// IsQuitting returns true if the user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}
