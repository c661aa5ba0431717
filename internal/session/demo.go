package session

import (
	"time"

	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/replay"
)

// DemoRecord returns the built-in replay that solves the demo level. It
// exists so "watch" has something to show on a fresh install, before any
// level has been solved.
func DemoRecord() replay.Record {
	return replay.Record{
		Version: replay.Version,
		LevelID: levels.DemoID,
		Actions: []replay.Action{
			{Kind: replay.ActionMoveUp, Delay: time.Second},
			{Kind: replay.ActionThrow, Delay: time.Second},
			{Kind: replay.ActionMoveDown, Delay: time.Second},
			{Kind: replay.ActionThrow, Delay: time.Second},
		},
	}
}
