package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rionnag/unblocked/internal/config"
	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/replay"
	"github.com/rionnag/unblocked/internal/session"
	"github.com/rionnag/unblocked/internal/storage"
)

// WatchModel is the Bubble Tea model for replay playback.
type WatchModel struct {
	sess       *session.Session
	cfg        config.Config
	keyMapper  *KeyMapper
	width      int
	height     int
	fast       bool
	quitting   bool
	backToMenu bool
}

// NewWatchModel creates a playback model for rec on the given level.
// Starting playback marks the level as replay-assisted; the mark is
// written immediately so quitting mid-replay still counts.
func NewWatchModel(level levels.Level, progress *session.Progress, rec replay.Record, store *storage.Store, cfg config.Config, width, height int) (WatchModel, error) {
	sess, err := session.NewWatch(level, progress, rec)
	if err != nil {
		return WatchModel{}, err
	}
	if store != nil && progress != nil {
		//nolint:errcheck // Best-effort save, playback continues regardless
		store.SaveProgress(progress)
	}
	return WatchModel{
		sess:      sess,
		cfg:       cfg,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}, nil
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.cfg.FPS)
}

// Update handles messages.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		m.sess.Advance(m.frameStep())
		return m, tickCmd(m.cfg.FPS)
	}
	return m, nil
}

// frameStep scales the per-frame virtual time by the playback speed.
// The session applies actions purely from accumulated virtual time, so
// fast-forward cannot change what happens, only how soon.
func (m WatchModel) frameStep() time.Duration {
	speed := m.cfg.Replay.Speed
	if m.fast {
		speed = m.cfg.Replay.FastForward
	}
	return time.Duration(float64(frameDuration(m.cfg.FPS)) * speed)
}

func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f", "tab":
		m.fast = !m.fast
		return m, nil
	}

	switch m.keyMapper.MapKeyToGameAction(msg) {
	case GameActionQuit:
		m.sess.Abort()
		m.quitting = true
		return m, tea.Quit
	case GameActionBack:
		m.sess.Abort()
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the board, the playback bar and the controls.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	level := m.sess.Level()
	title := fmt.Sprintf("REPLAY - %s", level.Name)
	b.WriteString("\n")
	b.WriteString(centerText(theme.HUDTitle.Render(title), m.width))
	b.WriteString("\n\n")

	board := renderBoard(m.sess.Board(), theme)
	for _, line := range strings.Split(board, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.playbackBar(theme), m.width))
	b.WriteString("\n")

	status := fmt.Sprintf("Throws: %d", m.sess.Throws())
	if m.fast {
		status += theme.HUDSeparator.Render("  |  ") + "fast-forward"
	}
	if m.sess.Playback() == replay.StateFinished {
		status += theme.HUDSeparator.Render("  |  ") + theme.OverlayTitle.Render("replay finished")
	}
	b.WriteString(centerText(theme.HUDValue.Render(status), m.width))
	b.WriteString("\n\n")

	controls := "F: Fast-forward  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(theme.HUDControls.Render(controls), m.width))

	return b.String()
}

// playbackBar renders a simple progress bar like "[#####-----] 50%".
func (m WatchModel) playbackBar(theme Theme) string {
	const cells = 20
	pct := m.sess.PlaybackProgress()
	filled := pct * cells / 100

	bar := "[" + strings.Repeat("#", filled) + strings.Repeat("-", cells-filled) + "]"
	return theme.HUDValue.Render(fmt.Sprintf("%s %3d%%", bar, pct))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m WatchModel) BackToMenu() bool {
	return m.backToMenu
}
