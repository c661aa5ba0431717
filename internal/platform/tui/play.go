package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rionnag/unblocked/internal/config"
	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/session"
	"github.com/rionnag/unblocked/internal/storage"
)

// PlayModel is the Bubble Tea model for a live attempt at one level.
type PlayModel struct {
	sess       *session.Session
	store      *storage.Store
	cfg        config.Config
	keyMapper  *KeyMapper
	width      int
	height     int
	quitting   bool
	backToMenu bool
	persisted  bool // progress/replay written for the current terminal outcome
}

// NewPlayModel creates a play model for the given level. progress is the
// level's stored history; it is updated in memory by the session and
// written back when an attempt ends.
func NewPlayModel(level levels.Level, progress *session.Progress, store *storage.Store, cfg config.Config, width, height int) (PlayModel, error) {
	sess, err := session.New(level, progress)
	if err != nil {
		return PlayModel{}, err
	}
	return PlayModel{
		sess:      sess,
		store:     store,
		cfg:       cfg,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}, nil
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.cfg.FPS)
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		if m.sess.Outcome() == session.OutcomeUnfinished {
			m.sess.Advance(frameDuration(m.cfg.FPS))
		}
		return m, tickCmd(m.cfg.FPS)
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToGameAction(msg) {
	case GameActionQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case GameActionBack:
		m.leave()
		m.backToMenu = true
		return m, tea.Quit

	case GameActionUp:
		m.sess.MoveUp()

	case GameActionDown:
		m.sess.MoveDown()

	case GameActionThrow:
		m.sess.Throw()
		m.persistOutcome()

	case GameActionRestart:
		//nolint:errcheck // The level validated at load time; restart cannot fail.
		m.sess.Restart()
		m.saveProgress()
		m.persisted = false
	}

	return m, nil
}

// leave finalizes the attempt before returning to the menu or quitting.
func (m *PlayModel) leave() {
	m.sess.Abort()
	m.saveProgress()
}

// persistOutcome writes progress (and on a win, the replay) once per
// terminal outcome.
func (m *PlayModel) persistOutcome() {
	if m.persisted {
		return
	}
	switch m.sess.Outcome() {
	case session.OutcomeWon:
		m.saveProgress()
		if rec, ok := m.sess.ReplaySnapshot(); ok && m.store != nil {
			//nolint:errcheck // Best-effort save, the win itself is already recorded
			m.store.SaveReplay(rec)
		}
		m.persisted = true
	case session.OutcomeFailed:
		m.saveProgress()
		m.persisted = true
	}
}

func (m *PlayModel) saveProgress() {
	if m.store == nil || m.sess.Progress() == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveProgress(m.sess.Progress())
}

// View renders the level, HUD and any result overlay.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	level := m.sess.Level()
	b.WriteString("\n")
	b.WriteString(centerText(theme.HUDTitle.Render(level.Name), m.width))
	b.WriteString("\n\n")

	board := renderBoard(m.sess.Board(), theme)
	for _, line := range strings.Split(board, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hud := fmt.Sprintf("Throws: %d", m.sess.Throws())
	if p := m.sess.Progress(); p != nil && p.BestThrows > 0 {
		hud += theme.HUDSeparator.Render("  |  ") + fmt.Sprintf("Best: %d", p.BestThrows)
	}
	b.WriteString(centerText(theme.HUDValue.Render(hud), m.width))
	b.WriteString("\n")

	if overlay := m.resultOverlay(theme); overlay != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(overlay, "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Aim  |  Space: Throw  |  R: Restart  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(theme.HUDControls.Render(controls), m.width))

	return b.String()
}

func (m PlayModel) resultOverlay(theme Theme) string {
	switch m.sess.Outcome() {
	case session.OutcomeWon:
		res := m.sess.Result()
		title := fmt.Sprintf("SOLVED in %d throws", res.Throws)
		notes := []string{"Replay saved."}
		if res.FirstSolve {
			notes = append([]string{"First solve!"}, notes...)
		}
		if res.Cheated {
			notes = append(notes, "(solved after watching the replay)")
		}
		return theme.OverlayTitle.Render(title) + "\n" +
			theme.OverlayText.Render(strings.Join(notes, " ")) + "\n" +
			theme.OverlayText.Render("R: Play again  |  Esc: Back")

	case session.OutcomeFailed:
		return theme.OverlayTitle.Render("STUCK") + "\n" +
			theme.OverlayText.Render("Nothing left to match.") + "\n" +
			theme.OverlayText.Render("R: Retry  |  Esc: Back")
	}
	return ""
}

// IsQuitting returns true if the user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// centerText centers text within the given width. Styled strings are
// measured by their printable width.
func centerText(text string, width int) string {
	length := lipgloss.Width(text)
	if length >= width {
		return text
	}
	padding := (width - length) / 2
	return strings.Repeat(" ", padding) + text
}
