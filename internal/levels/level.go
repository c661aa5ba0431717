// Package levels provides level definitions and loading for the puzzle.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"fmt"

	"github.com/rionnag/unblocked/internal/levels/formats"
	"github.com/rionnag/unblocked/internal/puzzle"
)

// Grid size limits. Levels outside these bounds fail validation.
const (
	MinSize = 2
	MaxSize = 7
)

// DemoID is the id of the built-in demo level. It is never part of the
// campaign; its replay ships with the binary.
const DemoID = "level-000"

// Level is an immutable level description: grid dimensions, initial cell
// contents, the player's first block and starting row. The engine only
// reads it when starting or restarting a session.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Cells    []puzzle.Kind // row-major, Rows*Cols entries
	Start    puzzle.Kind
	StartRow int
}

// fromParsed normalizes a parsed level: pads ragged rows to the widest
// one, applies the default start row, and validates.
func fromParsed(p formats.Level) (Level, error) {
	rows := len(p.Grid)
	cols := 0
	for _, r := range p.Grid {
		if len(r) > cols {
			cols = len(r)
		}
	}

	cells := make([]puzzle.Kind, rows*cols)
	for ri, row := range p.Grid {
		copy(cells[ri*cols:], row)
	}

	startRow := p.StartRow
	if startRow < 0 {
		startRow = rows - 1
	}

	lvl := Level{
		ID:       p.ID,
		Name:     p.Name,
		Rows:     rows,
		Cols:     cols,
		Cells:    cells,
		Start:    p.Start,
		StartRow: startRow,
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Validate checks the level invariants. A level that fails validation is
// rejected at load time and never reaches a session.
func (l Level) Validate() error {
	if l.Rows < MinSize || l.Rows > MaxSize {
		return fmt.Errorf("level %s: must have between %d and %d rows, found %d", l.ID, MinSize, MaxSize, l.Rows)
	}
	if l.Cols < MinSize || l.Cols > MaxSize {
		return fmt.Errorf("level %s: must have between %d and %d columns, found %d", l.ID, MinSize, MaxSize, l.Cols)
	}
	if len(l.Cells) != l.Rows*l.Cols {
		return fmt.Errorf("level %s: cell count %d does not match %dx%d grid", l.ID, len(l.Cells), l.Rows, l.Cols)
	}
	if l.StartRow < 0 || l.StartRow >= l.Rows {
		return fmt.Errorf("level %s: start row %d outside grid of %d rows", l.ID, l.StartRow, l.Rows)
	}
	if l.Start == puzzle.KindNone {
		return fmt.Errorf("level %s: missing starting block", l.ID)
	}
	occupied := 0
	for _, k := range l.Cells {
		if k != puzzle.KindNone {
			occupied++
		}
	}
	if occupied == 0 {
		return fmt.Errorf("level %s: grid has no blocks", l.ID)
	}
	return nil
}

// NewBoard creates a fresh board for one attempt at this level.
func (l Level) NewBoard() (*puzzle.Board, error) {
	return puzzle.NewBoard(l.Rows, l.Cols, l.Cells, l.Start, l.StartRow)
}

// Set is an ordered collection of levels keyed by id.
type Set struct {
	levels []Level
	byID   map[string]int
}

// NewSet builds a set from levels. Duplicate ids are an error.
func NewSet(lvls []Level) (*Set, error) {
	s := &Set{levels: lvls, byID: make(map[string]int, len(lvls))}
	for i, l := range lvls {
		if _, dup := s.byID[l.ID]; dup {
			return nil, fmt.Errorf("levels: duplicate level id %s", l.ID)
		}
		s.byID[l.ID] = i
	}
	return s, nil
}

// ByID returns a level by its id.
func (s *Set) ByID(id string) (Level, error) {
	i, ok := s.byID[id]
	if !ok {
		return Level{}, fmt.Errorf("levels: level not found: %s", id)
	}
	return s.levels[i], nil
}

// Demo returns the built-in demo level, if present.
func (s *Set) Demo() (Level, bool) {
	i, ok := s.byID[DemoID]
	if !ok {
		return Level{}, false
	}
	return s.levels[i], true
}

// Campaign returns the playable levels, in order, excluding the demo.
func (s *Set) Campaign() []Level {
	out := make([]Level, 0, len(s.levels))
	for _, l := range s.levels {
		if l.ID == DemoID {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Count returns the number of campaign levels.
func (s *Set) Count() int {
	return len(s.Campaign())
}
