package session

import "time"

// MaxRecordedThrows caps the stored best score so the scoreboard column
// stays three digits wide.
const MaxRecordedThrows = 999

// Progress is the per-level history a session reads and updates. It is
// owned by the caller: loaded from storage before a session starts and
// written back after the session produces a result. The session only
// mutates it in memory.
type Progress struct {
	LevelID    string
	Attempts   int
	Wins       int
	BestThrows int       // lowest winning throw count, 0 = never won
	FirstWin   time.Time // zero until the first win
	HelpUsed   bool      // a replay was watched before the first win
}

// Solved reports whether the level has ever been won.
func (p *Progress) Solved() bool {
	return p.Wins > 0
}

// NoteWin records a win with the given throw count. Returns whether this
// was the level's first-ever solve.
func (p *Progress) NoteWin(throws int, when time.Time) (first bool) {
	p.Attempts++
	p.Wins++
	first = p.Wins == 1
	if first {
		p.FirstWin = when
	}
	if throws > MaxRecordedThrows {
		throws = MaxRecordedThrows
	}
	if p.BestThrows == 0 || throws < p.BestThrows {
		p.BestThrows = throws
	}
	return first
}

// NoteFail records a failed attempt.
func (p *Progress) NoteFail() {
	p.Attempts++
}

// NoteReplayWatched marks that a replay for this level entered playback.
// The mark only matters before the first win: solving a level after
// watching its solution is not the same achievement as solving it cold.
func (p *Progress) NoteReplayWatched() {
	if p.Wins == 0 {
		p.HelpUsed = true
	}
}
