package session

import (
	"fmt"
	"time"

	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/puzzle"
	"github.com/rionnag/unblocked/internal/replay"
)

// MinThrows is the attempt threshold past which quitting a level counts
// as a failure rather than a free abort.
const MinThrows = 3

// Outcome is the terminal state of a session.
type Outcome uint8

const (
	OutcomeUnfinished Outcome = iota
	OutcomeWon
	OutcomeFailed
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeFailed:
		return "failed"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unfinished"
	}
}

// Result summarizes a finished session.
type Result struct {
	LevelID    string
	Throws     int
	Outcome    Outcome
	FirstSolve bool // this session produced the level's first win
	Cheated    bool // a replay was watched before that first win
}

// Option configures a Session.
type Option func(*Session)

// WithNow overrides the clock used to stamp first-win times. Tests use
// it for deterministic timestamps.
func WithNow(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session runs one attempt at one level. A live session accepts input,
// records accepted actions and tracks the outcome; a watch session
// replays a record through the same action path instead.
type Session struct {
	level    levels.Level
	board    *puzzle.Board
	progress *Progress
	now      func() time.Time

	recorder *replay.Recorder
	player   *replay.Player // non-nil only in watch mode

	throws     int
	outcome    Outcome
	firstSolve bool
	sinceLast  time.Duration
}

// New starts a live session. progress may be nil when no history should
// be tracked (the caller then also gets no first-solve or cheat facts).
func New(level levels.Level, progress *Progress, opts ...Option) (*Session, error) {
	board, err := level.NewBoard()
	if err != nil {
		return nil, err
	}
	s := &Session{
		level:    level,
		board:    board,
		progress: progress,
		now:      time.Now,
		recorder: replay.NewRecorder(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewWatch starts a watch session that replays rec on a fresh board of
// the same level. Starting playback marks the level's progress as
// replay-assisted if it has not been solved yet.
func NewWatch(level levels.Level, progress *Progress, rec replay.Record, opts ...Option) (*Session, error) {
	if rec.LevelID != level.ID {
		return nil, fmt.Errorf("session: replay is for level %q, not %q", rec.LevelID, level.ID)
	}
	s, err := New(level, progress, opts...)
	if err != nil {
		return nil, err
	}
	s.player = replay.NewPlayer()
	if err := s.player.Start(rec); err != nil {
		return nil, err
	}
	if progress != nil {
		progress.NoteReplayWatched()
	}
	return s, nil
}

// Level returns the level being played.
func (s *Session) Level() levels.Level { return s.level }

// Progress returns the level history this session updates. May be nil.
func (s *Session) Progress() *Progress { return s.progress }

// Board returns a snapshot of the current board state.
func (s *Session) Board() puzzle.Snapshot { return s.board.Snapshot() }

// Throws returns the number of accepted throws so far.
func (s *Session) Throws() int { return s.throws }

// Outcome returns the session's current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Watching reports whether this is a replay session.
func (s *Session) Watching() bool { return s.player != nil }

// Playback returns the replay player's state, or StateIdle for live
// sessions.
func (s *Session) Playback() replay.State {
	if s.player == nil {
		return replay.StateIdle
	}
	return s.player.State()
}

// PlaybackProgress returns how far playback has advanced, 0..100.
func (s *Session) PlaybackProgress() int {
	if s.player == nil {
		return 0
	}
	return s.player.Progress()
}

// Advance moves the session's virtual clock forward by dt. In a live
// session this only accumulates the delay stamped on the next recorded
// action; in a watch session it also releases and applies any replay
// actions that have come due.
func (s *Session) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if s.player == nil {
		s.sinceLast += dt
		return
	}
	for _, kind := range s.player.Advance(dt) {
		s.apply(kind)
	}
}

// MoveUp moves the player one row up. Returns whether the move happened;
// moves blocked at the edge are not recorded.
func (s *Session) MoveUp() bool { return s.move(replay.ActionMoveUp) }

// MoveDown moves the player one row down.
func (s *Session) MoveDown() bool { return s.move(replay.ActionMoveDown) }

func (s *Session) move(kind replay.ActionKind) bool {
	if s.player != nil || s.outcome != OutcomeUnfinished {
		return false
	}
	if !s.apply(kind) {
		return false
	}
	s.record(kind)
	return true
}

// Throw throws the held block at the player's current row. Throws that
// would change nothing (empty row, non-matching nearest block) are
// rejected and neither recorded nor counted.
func (s *Session) Throw() (puzzle.ThrowOutcome, bool) {
	if s.player != nil || s.outcome != OutcomeUnfinished {
		return puzzle.ThrowOutcome{Signal: puzzle.SignalNoMatch}, false
	}
	out, ok := s.applyThrow()
	if ok {
		s.record(replay.ActionThrow)
	}
	return out, ok
}

// apply routes one action kind through the same acceptance logic for
// live input and replayed input.
func (s *Session) apply(kind replay.ActionKind) bool {
	switch kind {
	case replay.ActionMoveUp:
		return s.board.MovePlayer(puzzle.DirUp)
	case replay.ActionMoveDown:
		return s.board.MovePlayer(puzzle.DirDown)
	case replay.ActionThrow:
		_, ok := s.applyThrow()
		return ok
	default:
		return false
	}
}

func (s *Session) applyThrow() (puzzle.ThrowOutcome, bool) {
	if s.outcome != OutcomeUnfinished {
		return puzzle.ThrowOutcome{Signal: puzzle.SignalNoMatch}, false
	}
	out := puzzle.ResolveThrow(s.board, s.board.PlayerRow())
	if out.Signal == puzzle.SignalNoMatch {
		return out, false
	}
	s.throws++
	switch {
	case out.Signal == puzzle.SignalWin:
		s.finishWin()
	case puzzle.NoMovesLeft(s.board):
		s.finishFail()
	}
	return out, true
}

func (s *Session) record(kind replay.ActionKind) {
	s.recorder.Record(kind, s.sinceLast)
	s.sinceLast = 0
}

func (s *Session) finishWin() {
	s.outcome = OutcomeWon
	if s.player != nil || s.progress == nil {
		return
	}
	s.firstSolve = s.progress.NoteWin(s.throws, s.now())
}

func (s *Session) finishFail() {
	s.outcome = OutcomeFailed
	if s.player == nil && s.progress != nil {
		s.progress.NoteFail()
	}
}

// Restart resets the board, recorder and throw counter for a fresh
// attempt at the same level. Restarting a live attempt with MinThrows or
// more throws already spent counts as a failure first.
func (s *Session) Restart() error {
	if s.player == nil && s.outcome == OutcomeUnfinished && s.throws >= MinThrows {
		s.finishFail()
	}
	board, err := s.level.NewBoard()
	if err != nil {
		return err
	}
	s.board = board
	s.recorder.Reset()
	s.throws = 0
	s.outcome = OutcomeUnfinished
	s.firstSolve = false
	s.sinceLast = 0
	if s.player != nil {
		s.player.Interrupt()
	}
	return nil
}

// Abort ends the session early. An unfinished live attempt with
// MinThrows or more throws counts as failed; with fewer it is a free
// abort. Finished sessions keep their outcome.
func (s *Session) Abort() Outcome {
	if s.player != nil {
		s.player.Interrupt()
		if s.outcome == OutcomeUnfinished {
			s.outcome = OutcomeAborted
		}
		return s.outcome
	}
	if s.outcome == OutcomeUnfinished {
		if s.throws >= MinThrows {
			s.finishFail()
		} else {
			s.outcome = OutcomeAborted
		}
	}
	return s.outcome
}

// Result summarizes the session. Meaningful once Outcome is terminal.
func (s *Session) Result() Result {
	r := Result{
		LevelID:    s.level.ID,
		Throws:     s.throws,
		Outcome:    s.outcome,
		FirstSolve: s.firstSolve,
	}
	if s.progress != nil {
		r.Cheated = s.progress.HelpUsed
	}
	return r
}

// ReplaySnapshot returns the compressed record of this session's
// accepted actions. It returns false for watch sessions and for live
// sessions with no throws yet: a replay with nothing thrown is not
// worth keeping.
func (s *Session) ReplaySnapshot() (replay.Record, bool) {
	if s.player != nil || s.recorder.Throws() == 0 {
		return replay.Record{}, false
	}
	return replay.Compress(s.recorder.Snapshot(s.level.ID)), true
}
