package replay

import "time"

// Recorder captures the action stream of a live session. Recording starts
// implicitly at every level (re)start via Reset; nothing is persisted until
// the caller explicitly takes a Snapshot and hands it to storage.
type Recorder struct {
	actions []Action
	throws  int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one action with the virtual time elapsed since the
// previous action. Negative elapsed values are recorded as zero.
func (r *Recorder) Record(kind ActionKind, sinceLast time.Duration) {
	if sinceLast < 0 {
		sinceLast = 0
	}
	r.actions = append(r.actions, Action{Kind: kind, Delay: sinceLast})
	if kind == ActionThrow {
		r.throws++
	}
}

// Reset discards the captured stream. Called on level start, restart and fail.
func (r *Recorder) Reset() {
	r.actions = r.actions[:0]
	r.throws = 0
}

// Len returns the number of captured actions.
func (r *Recorder) Len() int {
	return len(r.actions)
}

// Throws returns the number of captured Throw actions. A stream with no
// throws is not worth saving.
func (r *Recorder) Throws() int {
	return r.throws
}

// Snapshot returns a copy of the captured stream as a record for the given
// level. The recorder keeps recording; the snapshot is independent.
func (r *Recorder) Snapshot(levelID string) Record {
	actions := make([]Action, len(r.actions))
	copy(actions, r.actions)
	return Record{Version: Version, LevelID: levelID, Actions: actions}
}
