package replay

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedVersion is reported when a record's format version is not
// in the supported set. Playback does not start; no state is corrupted.
var ErrUnsupportedVersion = errors.New("replay: unsupported record version")

// State is the player's playback state.
type State uint8

const (
	StateIdle State = iota
	StatePlaying
	StateFinished
	StateInterrupted
)

// String returns the string representation of a player state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateFinished:
		return "Finished"
	case StateInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}

// Player replays a record on a virtual clock. The caller drives it by
// feeding elapsed virtual time through Advance; the player releases actions
// when their scheduled moment passes. Pacing is the only thing the clock
// controls - the action sequence, and therefore the outcome, is fixed by
// the record alone.
type Player struct {
	rec   Record
	state State

	idx     int           // next action to release
	clock   time.Duration // accumulated virtual time
	nextDue time.Duration // virtual moment of the action at idx
}

// NewPlayer creates an idle player.
func NewPlayer() *Player {
	return &Player{}
}

// Start begins playback of a record. The record's version is verified
// first; an unsupported version leaves the player Idle and returns
// ErrUnsupportedVersion. An empty record finishes immediately.
func (p *Player) Start(rec Record) error {
	if rec.Version != Version {
		return fmt.Errorf("%w: got %d, can play only %d", ErrUnsupportedVersion, rec.Version, Version)
	}
	p.rec = rec.Clone()
	p.idx = 0
	p.clock = 0
	if len(p.rec.Actions) == 0 {
		p.state = StateFinished
		return nil
	}
	// An oversized lead-in delay can sneak in through a record that was
	// never compressed; don't make the viewer sit through it.
	p.nextDue = p.rec.Actions[0].Delay
	if p.nextDue > MaxDelay {
		p.nextDue = MaxDelay
	}
	p.state = StatePlaying
	return nil
}

// Advance moves the virtual clock forward and returns the actions whose
// scheduled time has passed, in recorded order. Callers fast-forward by
// scaling dt. Returns nil when the player is not playing.
func (p *Player) Advance(dt time.Duration) []ActionKind {
	if p.state != StatePlaying {
		return nil
	}
	if dt > 0 {
		p.clock += dt
	}

	var due []ActionKind
	for p.idx < len(p.rec.Actions) && p.nextDue <= p.clock {
		due = append(due, p.rec.Actions[p.idx].Kind)
		p.idx++
		if p.idx < len(p.rec.Actions) {
			p.nextDue += p.rec.Actions[p.idx].Delay
		}
	}
	if p.idx >= len(p.rec.Actions) {
		p.state = StateFinished
	}
	return due
}

// Interrupt cancels playback. A no-op unless the player is Playing.
func (p *Player) Interrupt() {
	if p.state == StatePlaying {
		p.state = StateInterrupted
	}
}

// State returns the current playback state.
func (p *Player) State() State {
	return p.state
}

// Playing reports whether playback is in progress.
func (p *Player) Playing() bool {
	return p.state == StatePlaying
}

// Progress returns playback progress as a percentage of released actions.
func (p *Player) Progress() int {
	n := len(p.rec.Actions)
	if n == 0 || p.state == StateIdle {
		return 0
	}
	return p.idx * 100 / n
}

// LevelID returns the level the loaded record belongs to.
func (p *Player) LevelID() string {
	return p.rec.LevelID
}
