package session

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rionnag/unblocked/internal/levels"
	"github.com/rionnag/unblocked/internal/puzzle"
	"github.com/rionnag/unblocked/internal/replay"
)

func testLevel(t *testing.T, id string, start rune, rows ...string) levels.Level {
	t.Helper()
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	cells := make([]puzzle.Kind, len(rows)*cols)
	for ri, row := range rows {
		for ci, ch := range row {
			cells[ri*cols+ci] = puzzle.ParseKind(ch)
		}
	}
	sk := puzzle.ParseKind(start)
	if sk == puzzle.KindNone {
		t.Fatalf("bad start %q", start)
	}
	lvl := levels.Level{
		ID:       id,
		Name:     id,
		Rows:     len(rows),
		Cols:     cols,
		Cells:    cells,
		Start:    sk,
		StartRow: len(rows) - 1,
	}
	if err := lvl.Validate(); err != nil {
		t.Fatalf("test level invalid: %v", err)
	}
	return lvl
}

// demoLevel mirrors the embedded demo: two throws to win.
func demoLevel(t *testing.T) levels.Level {
	return testLevel(t, levels.DemoID, 'S', "XSS", "X..")
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLiveWinUpdatesProgress(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	prog := &Progress{LevelID: levels.DemoID}
	s, err := New(demoLevel(t), prog, WithNow(fixedNow(when)))
	if err != nil {
		t.Fatal(err)
	}

	if !s.MoveUp() {
		t.Fatal("move up rejected")
	}
	if _, ok := s.Throw(); !ok {
		t.Fatal("first throw rejected")
	}
	if !s.MoveDown() {
		t.Fatal("move down rejected")
	}
	if _, ok := s.Throw(); !ok {
		t.Fatal("second throw rejected")
	}

	if s.Outcome() != OutcomeWon {
		t.Fatalf("outcome = %v, want won", s.Outcome())
	}
	res := s.Result()
	if res.Throws != 2 || !res.FirstSolve || res.Cheated {
		t.Fatalf("result = %+v", res)
	}
	if prog.Wins != 1 || prog.Attempts != 1 || prog.BestThrows != 2 {
		t.Fatalf("progress = %+v", prog)
	}
	if !prog.FirstWin.Equal(when) {
		t.Fatalf("first win = %v, want %v", prog.FirstWin, when)
	}
}

func TestRejectedActionsAreNotRecorded(t *testing.T) {
	s, err := New(demoLevel(t), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Player starts at the bottom row: moving further down must fail.
	if s.MoveDown() {
		t.Fatal("move past the bottom edge was accepted")
	}
	// Bottom row starts with a lone X; the held S cannot match it.
	if out, ok := s.Throw(); ok || out.Signal != puzzle.SignalNoMatch {
		t.Fatalf("non-matching throw accepted: %+v", out)
	}
	if s.Throws() != 0 {
		t.Fatalf("throws = %d after rejected throw", s.Throws())
	}
	if _, ok := s.ReplaySnapshot(); ok {
		t.Fatal("replay snapshot available with nothing thrown")
	}
}

func TestReplaySnapshotIsCompressed(t *testing.T) {
	s, err := New(demoLevel(t), nil)
	if err != nil {
		t.Fatal(err)
	}

	s.Advance(10 * time.Second)
	s.MoveUp()
	s.Advance(500 * time.Millisecond)
	if _, ok := s.Throw(); !ok {
		t.Fatal("throw rejected")
	}

	rec, ok := s.ReplaySnapshot()
	if !ok {
		t.Fatal("no replay snapshot after a throw")
	}
	if rec.LevelID != levels.DemoID || rec.Version != replay.Version {
		t.Fatalf("record header = %+v", rec)
	}
	want := []replay.Action{
		{Kind: replay.ActionMoveUp, Delay: replay.MaxDelay},
		{Kind: replay.ActionThrow, Delay: 500 * time.Millisecond},
	}
	if !reflect.DeepEqual(rec.Actions, want) {
		t.Fatalf("actions = %+v, want %+v", rec.Actions, want)
	}
}

func TestRecordThenWatchReachesTheSameBoard(t *testing.T) {
	lvl := demoLevel(t)
	s, err := New(lvl, &Progress{LevelID: lvl.ID})
	if err != nil {
		t.Fatal(err)
	}

	s.Advance(700 * time.Millisecond)
	s.MoveUp()
	s.Advance(300 * time.Millisecond)
	s.Throw()
	s.Advance(1200 * time.Millisecond)
	s.MoveDown()
	s.Advance(400 * time.Millisecond)
	s.Throw()
	if s.Outcome() != OutcomeWon {
		t.Fatalf("live outcome = %v", s.Outcome())
	}
	liveBoard := s.Board()

	rec, ok := s.ReplaySnapshot()
	if !ok {
		t.Fatal("no replay snapshot")
	}

	watchProg := &Progress{LevelID: lvl.ID}
	w, err := NewWatch(lvl, watchProg, rec)
	if err != nil {
		t.Fatal(err)
	}
	if !w.Watching() {
		t.Fatal("watch session not in watch mode")
	}
	for i := 0; i < 1000 && w.Playback() != replay.StateFinished; i++ {
		w.Advance(25 * time.Millisecond)
	}
	if w.Playback() != replay.StateFinished {
		t.Fatal("playback never finished")
	}
	if w.Outcome() != OutcomeWon {
		t.Fatalf("watch outcome = %v, want won", w.Outcome())
	}
	if !reflect.DeepEqual(w.Board(), liveBoard) {
		t.Fatalf("watch board = %+v, live board = %+v", w.Board(), liveBoard)
	}
	// Watching a solution is not solving the level.
	if watchProg.Wins != 0 || watchProg.Attempts != 0 {
		t.Fatalf("watch session touched win stats: %+v", watchProg)
	}
	if !watchProg.HelpUsed {
		t.Fatal("watching before the first win did not mark help used")
	}
}

func TestWatchIsDeterministicAcrossTickSizes(t *testing.T) {
	lvl := demoLevel(t)
	rec := DemoRecord()

	run := func(step time.Duration) puzzle.Snapshot {
		w, err := NewWatch(lvl, nil, rec)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10000 && w.Playback() != replay.StateFinished; i++ {
			w.Advance(step)
		}
		if w.Playback() != replay.StateFinished {
			t.Fatalf("playback with %v ticks never finished", step)
		}
		return w.Board()
	}

	fine := run(time.Millisecond)
	coarse := run(2 * time.Second)
	if !reflect.DeepEqual(fine, coarse) {
		t.Fatalf("tick size changed the result: %+v vs %+v", fine, coarse)
	}
}

func TestDemoRecordSolvesDemoLevel(t *testing.T) {
	w, err := NewWatch(demoLevel(t), nil, DemoRecord())
	if err != nil {
		t.Fatal(err)
	}
	w.Advance(time.Minute)
	if w.Playback() != replay.StateFinished {
		t.Fatal("demo playback did not finish")
	}
	if w.Outcome() != OutcomeWon {
		t.Fatalf("demo outcome = %v, want won", w.Outcome())
	}
}

func TestWatchChecksRecordHeader(t *testing.T) {
	lvl := demoLevel(t)

	rec := DemoRecord()
	rec.LevelID = "level-042"
	if _, err := NewWatch(lvl, nil, rec); err == nil {
		t.Fatal("record for another level accepted")
	}

	rec = DemoRecord()
	rec.Version = replay.Version + 1
	_, err := NewWatch(lvl, nil, rec)
	if !errors.Is(err, replay.ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestWatchAfterWinLeavesHelpUnused(t *testing.T) {
	prog := &Progress{LevelID: levels.DemoID, Wins: 1, Attempts: 1, BestThrows: 2}
	w, err := NewWatch(demoLevel(t), prog, DemoRecord())
	if err != nil {
		t.Fatal(err)
	}
	w.Advance(time.Minute)
	if prog.HelpUsed {
		t.Fatal("watching after the first win marked help used")
	}
}

// abortLevel allows three non-winning throws on the bottom row.
func abortLevel(t *testing.T) levels.Level {
	return testLevel(t, "level-abort", 'S',
		"XX.....",
		"XXSSXXS",
	)
}

func throwTimes(t *testing.T, s *Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, ok := s.Throw(); !ok {
			t.Fatalf("throw %d rejected", i+1)
		}
	}
}

func TestAbortBelowMinThrowsIsFree(t *testing.T) {
	prog := &Progress{}
	s, err := New(abortLevel(t), prog)
	if err != nil {
		t.Fatal(err)
	}
	throwTimes(t, s, MinThrows-1)
	if got := s.Abort(); got != OutcomeAborted {
		t.Fatalf("abort outcome = %v, want aborted", got)
	}
	if prog.Attempts != 0 {
		t.Fatalf("free abort counted an attempt: %+v", prog)
	}
}

func TestAbortAtMinThrowsCountsAsFail(t *testing.T) {
	prog := &Progress{}
	s, err := New(abortLevel(t), prog)
	if err != nil {
		t.Fatal(err)
	}
	throwTimes(t, s, MinThrows)
	if s.Outcome() != OutcomeUnfinished {
		t.Fatalf("outcome = %v before abort", s.Outcome())
	}
	if got := s.Abort(); got != OutcomeFailed {
		t.Fatalf("abort outcome = %v, want failed", got)
	}
	if prog.Attempts != 1 || prog.Wins != 0 {
		t.Fatalf("progress = %+v", prog)
	}
}

func TestRestartResetsTheAttempt(t *testing.T) {
	prog := &Progress{}
	lvl := abortLevel(t)
	s, err := New(lvl, prog)
	if err != nil {
		t.Fatal(err)
	}
	fresh := s.Board()

	throwTimes(t, s, 2)
	if err := s.Restart(); err != nil {
		t.Fatal(err)
	}
	if s.Throws() != 0 || s.Outcome() != OutcomeUnfinished {
		t.Fatalf("throws=%d outcome=%v after restart", s.Throws(), s.Outcome())
	}
	if !reflect.DeepEqual(s.Board(), fresh) {
		t.Fatal("restart did not reset the board")
	}
	if _, ok := s.ReplaySnapshot(); ok {
		t.Fatal("restart kept the old recording")
	}
	if prog.Attempts != 0 {
		t.Fatalf("restart below min throws counted an attempt: %+v", prog)
	}

	throwTimes(t, s, MinThrows)
	if err := s.Restart(); err != nil {
		t.Fatal(err)
	}
	if prog.Attempts != 1 {
		t.Fatalf("restart at min throws did not count a fail: %+v", prog)
	}
}

func TestStuckBoardFailsTheSession(t *testing.T) {
	// After the only matching throw the player holds X with nothing
	// throwable left.
	lvl := testLevel(t, "level-stuck", 'S',
		"XS",
		"OO",
	)
	prog := &Progress{}
	s, err := New(lvl, prog)
	if err != nil {
		t.Fatal(err)
	}
	s.MoveUp()
	if _, ok := s.Throw(); !ok {
		t.Fatal("throw rejected")
	}
	if s.Outcome() != OutcomeFailed {
		t.Fatalf("outcome = %v, want failed", s.Outcome())
	}
	if prog.Attempts != 1 || prog.Wins != 0 {
		t.Fatalf("progress = %+v", prog)
	}
	// A finished session accepts nothing further.
	if s.MoveDown() {
		t.Fatal("move accepted after failure")
	}
	if _, ok := s.Throw(); ok {
		t.Fatal("throw accepted after failure")
	}
}

func TestProgressBestThrowsClamped(t *testing.T) {
	p := &Progress{}
	if first := p.NoteWin(5000, time.Now()); !first {
		t.Fatal("first win not reported")
	}
	if p.BestThrows != MaxRecordedThrows {
		t.Fatalf("best = %d, want %d", p.BestThrows, MaxRecordedThrows)
	}
	p.NoteWin(4, time.Now())
	if p.BestThrows != 4 {
		t.Fatalf("best = %d, want 4", p.BestThrows)
	}
	p.NoteWin(9, time.Now())
	if p.BestThrows != 4 {
		t.Fatalf("best = %d after worse win, want 4", p.BestThrows)
	}
}
