// Package replay provides deterministic recording and playback of play
// sessions. A session is captured as an ordered stream of timed actions;
// feeding the same stream back through the same resolution engine
// reproduces the session exactly.
package replay

import "time"

// Version is the record format version currently written and accepted.
const Version = 1

// MaxDelay is the ceiling for the pause between two stored actions.
// Longer gaps are clamped at save time so replays stay watchable.
const MaxDelay = 3 * time.Second

// ActionKind represents one recorded user intent.
type ActionKind uint8

const (
	ActionMoveUp ActionKind = iota
	ActionMoveDown
	ActionThrow
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionThrow:
		return "Throw"
	default:
		return "Unknown"
	}
}

// Action is a single recorded intent tagged with the virtual time elapsed
// since the previous action. Zero for immediately-consecutive actions.
type Action struct {
	Kind  ActionKind
	Delay time.Duration
}

// Record is a complete replay: format version, the level it was recorded
// on, and the ordered action stream.
type Record struct {
	Version int
	LevelID string
	Actions []Action
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	actions := make([]Action, len(r.Actions))
	copy(actions, r.Actions)
	return Record{Version: r.Version, LevelID: r.LevelID, Actions: actions}
}

// Throws returns the number of Throw actions in the record.
func (r Record) Throws() int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == ActionThrow {
			n++
		}
	}
	return n
}

// Equal reports whether two records are identical.
func (r Record) Equal(other Record) bool {
	if r.Version != other.Version || r.LevelID != other.LevelID {
		return false
	}
	if len(r.Actions) != len(other.Actions) {
		return false
	}
	for i, a := range r.Actions {
		if a != other.Actions[i] {
			return false
		}
	}
	return true
}
