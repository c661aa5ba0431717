package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rionnag/unblocked/internal/config"
	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/replay"
	"github.com/rionnag/unblocked/internal/session"
	"github.com/rionnag/unblocked/internal/storage"
)

type appMode int

const (
	modePicker appMode = iota
	modePlay
	modeWatch
	modeScores
)

// AppModel manages the full session flow: picker -> play/watch -> picker.
// It is the top-level model for both local runs and SSH sessions.
type AppModel struct {
	store  *storage.Store
	set    *levels.Set
	cfg    config.Config
	width  int
	height int

	mode       appMode
	picker     PickerModel
	play       *PlayModel
	watch      *WatchModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewAppModel creates the top-level model.
func NewAppModel(store *storage.Store, set *levels.Set, cfg config.Config, width, height int) AppModel {
	return AppModel{
		store:  store,
		set:    set,
		cfg:    cfg,
		width:  width,
		height: height,
		picker: NewPickerModel(set, store, width, height),
	}
}

// Init initializes the session flow.
func (m AppModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.mode {
	case modePlay:
		return m.updatePlay(msg)
	case modeWatch:
		return m.updateWatch(msg)
	case modeScores:
		return m.updateScoreboard(msg)
	default:
		return m.updatePicker(msg)
	}
}

func (m AppModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.picker.Update(msg)
	if picker, ok := newModel.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.picker.WantsScoreboard() {
		sb := NewScoreboardModel(m.set, m.store, m.width, m.height)
		m.scoreboard = &sb
		m.mode = modeScores
		return m, m.scoreboard.Init()
	}

	if selected := m.picker.Selected(); selected != nil {
		if m.picker.WantsWatch() {
			return m.startWatch(selected.Level)
		}
		return m.startPlay(selected.Level)
	}

	return m, cmd
}

func (m AppModel) startPlay(level levels.Level) (tea.Model, tea.Cmd) {
	progress := m.loadProgress(level.ID)
	play, err := NewPlayModel(level, progress, m.store, m.cfg, m.width, m.height)
	if err != nil {
		return m.backToPicker()
	}
	m.play = &play
	m.mode = modePlay
	return m, m.play.Init()
}

func (m AppModel) startWatch(level levels.Level) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m.backToPicker()
	}
	rec, err := m.store.LoadReplay(level.ID)
	if err != nil || rec == nil {
		return m.backToPicker()
	}
	watch, err := NewWatchModel(level, m.loadProgress(level.ID), *rec, m.store, m.cfg, m.width, m.height)
	if err != nil {
		// Stored replay the player cannot handle, e.g. a newer format.
		return m.backToPicker()
	}
	m.watch = &watch
	m.mode = modeWatch
	return m, m.watch.Init()
}

func (m AppModel) loadProgress(levelID string) *session.Progress {
	if m.store != nil {
		if p, err := m.store.LoadProgress(levelID); err == nil {
			return p
		}
	}
	return &session.Progress{LevelID: levelID}
}

func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if play, ok := newModel.(PlayModel); ok {
		m.play = &play
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		return m.backToPicker()
	}

	return m, cmd
}

func (m AppModel) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.watch.Update(msg)
	if watch, ok := newModel.(WatchModel); ok {
		m.watch = &watch
	}

	if m.watch.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.watch.BackToMenu() {
		return m.backToPicker()
	}

	return m, cmd
}

func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToPicker()
	}

	return m, cmd
}

// backToPicker rebuilds the picker so it reflects fresh progress.
func (m AppModel) backToPicker() (tea.Model, tea.Cmd) {
	m.play = nil
	m.watch = nil
	m.scoreboard = nil
	m.mode = modePicker
	m.picker = NewPickerModel(m.set, m.store, m.width, m.height)
	return m, m.picker.Init()
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modePlay:
		return m.play.View()
	case modeWatch:
		return m.watch.View()
	case modeScores:
		return m.scoreboard.View()
	default:
		return m.picker.View()
	}
}

// RunApp starts the full-screen session flow locally.
func RunApp(store *storage.Store, set *levels.Set, cfg config.Config, width, height int) error {
	model := NewAppModel(store, set, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunPlay runs a single level attempt and exits when it ends.
func RunPlay(level levels.Level, progress *session.Progress, store *storage.Store, cfg config.Config, width, height int) error {
	model, err := NewPlayModel(level, progress, store, cfg, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

// RunWatch plays back a replay and exits when the user leaves.
func RunWatch(level levels.Level, progress *session.Progress, rec replay.Record, store *storage.Store, cfg config.Config, width, height int) error {
	model, err := NewWatchModel(level, progress, rec, store, cfg, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
