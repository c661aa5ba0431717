package replay

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderCapturesStream(t *testing.T) {
	r := NewRecorder()
	r.Record(ActionMoveDown, 500*time.Millisecond)
	r.Record(ActionThrow, 2*time.Second)
	r.Record(ActionThrow, 0)

	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	if r.Throws() != 2 {
		t.Errorf("throws = %d, want 2", r.Throws())
	}

	rec := r.Snapshot("level-07")
	if rec.Version != Version {
		t.Errorf("version = %d, want %d", rec.Version, Version)
	}
	if rec.LevelID != "level-07" {
		t.Errorf("level id = %q", rec.LevelID)
	}
	if rec.Actions[1].Kind != ActionThrow || rec.Actions[1].Delay != 2*time.Second {
		t.Errorf("action 1 = %+v", rec.Actions[1])
	}

	// Snapshot is independent of further recording.
	r.Record(ActionMoveUp, time.Second)
	if len(rec.Actions) != 3 {
		t.Error("snapshot grew with the recorder")
	}

	r.Reset()
	if r.Len() != 0 || r.Throws() != 0 {
		t.Error("reset did not discard the stream")
	}
}

func TestRecorderClampsNegativeElapsed(t *testing.T) {
	r := NewRecorder()
	r.Record(ActionThrow, -time.Second)
	if d := r.Snapshot("x").Actions[0].Delay; d != 0 {
		t.Errorf("delay = %v, want 0", d)
	}
}

func TestCompressClampsOnlyLongDelays(t *testing.T) {
	rec := Record{
		Version: Version,
		LevelID: "level-03",
		Actions: []Action{
			{Kind: ActionMoveUp, Delay: time.Second},
			{Kind: ActionThrow, Delay: 17 * time.Second},
			{Kind: ActionMoveDown, Delay: MaxDelay},
			{Kind: ActionThrow, Delay: MaxDelay + time.Nanosecond},
		},
	}

	got := Compress(rec)
	want := []time.Duration{time.Second, MaxDelay, MaxDelay, MaxDelay}
	for i, a := range got.Actions {
		if a.Delay != want[i] {
			t.Errorf("action %d delay = %v, want %v", i, a.Delay, want[i])
		}
		if a.Kind != rec.Actions[i].Kind {
			t.Errorf("action %d kind changed to %v", i, a.Kind)
		}
	}

	// Input untouched, transform idempotent.
	if rec.Actions[1].Delay != 17*time.Second {
		t.Error("Compress mutated its input")
	}
	if twice := Compress(got); !twice.Equal(got) {
		t.Error("Compress is not idempotent")
	}
}

func TestPlayerRejectsUnknownVersion(t *testing.T) {
	p := NewPlayer()
	err := p.Start(Record{Version: 99, LevelID: "level-01"})
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
	if p.State() != StateIdle {
		t.Errorf("state = %v, player must never reach Playing", p.State())
	}
	if p.Advance(time.Hour) != nil {
		t.Error("idle player released actions")
	}
}

func TestPlayerPacesActionsOnVirtualClock(t *testing.T) {
	rec := Record{Version: Version, Actions: []Action{
		{Kind: ActionMoveDown, Delay: time.Second},
		{Kind: ActionThrow, Delay: 2 * time.Second},
		{Kind: ActionThrow, Delay: 0},
	}}

	p := NewPlayer()
	if err := p.Start(rec); err != nil {
		t.Fatal(err)
	}
	if p.State() != StatePlaying {
		t.Fatalf("state = %v, want Playing", p.State())
	}

	if got := p.Advance(999 * time.Millisecond); got != nil {
		t.Errorf("released %v before due time", got)
	}
	if got := p.Advance(time.Millisecond); len(got) != 1 || got[0] != ActionMoveDown {
		t.Errorf("at 1s released %v, want [MoveDown]", got)
	}
	// Jumping the clock past both remaining actions releases them together,
	// in recorded order.
	got := p.Advance(5 * time.Second)
	if len(got) != 2 || got[0] != ActionThrow || got[1] != ActionThrow {
		t.Errorf("released %v, want [Throw Throw]", got)
	}
	if p.State() != StateFinished {
		t.Errorf("state = %v, want Finished", p.State())
	}
	if p.Progress() != 100 {
		t.Errorf("progress = %d, want 100", p.Progress())
	}
}

func TestPlayerClampsLeadInDelay(t *testing.T) {
	rec := Record{Version: Version, Actions: []Action{
		{Kind: ActionThrow, Delay: time.Minute}, // never compressed
	}}

	p := NewPlayer()
	if err := p.Start(rec); err != nil {
		t.Fatal(err)
	}
	if got := p.Advance(MaxDelay); len(got) != 1 {
		t.Errorf("action not released at the clamped lead-in, got %v", got)
	}
}

func TestPlayerInterrupt(t *testing.T) {
	rec := Record{Version: Version, Actions: []Action{{Kind: ActionThrow, Delay: time.Second}}}

	p := NewPlayer()
	if err := p.Start(rec); err != nil {
		t.Fatal(err)
	}
	p.Interrupt()
	if p.State() != StateInterrupted {
		t.Fatalf("state = %v, want Interrupted", p.State())
	}
	if p.Advance(time.Hour) != nil {
		t.Error("interrupted player released actions")
	}

	// Interrupt outside Playing is a no-op.
	idle := NewPlayer()
	idle.Interrupt()
	if idle.State() != StateIdle {
		t.Errorf("idle player state = %v after Interrupt", idle.State())
	}
}

func TestPlayerEmptyRecordFinishesImmediately(t *testing.T) {
	p := NewPlayer()
	if err := p.Start(Record{Version: Version}); err != nil {
		t.Fatal(err)
	}
	if p.State() != StateFinished {
		t.Errorf("state = %v, want Finished", p.State())
	}
}

func TestPlayerDeterministicAcrossPacing(t *testing.T) {
	rec := Record{Version: Version, Actions: []Action{
		{Kind: ActionMoveUp, Delay: 300 * time.Millisecond},
		{Kind: ActionThrow, Delay: time.Second},
		{Kind: ActionMoveDown, Delay: 100 * time.Millisecond},
		{Kind: ActionThrow, Delay: 2 * time.Second},
	}}

	// Same record, wildly different tick sizes: identical action sequence.
	run := func(step time.Duration) []ActionKind {
		p := NewPlayer()
		if err := p.Start(rec); err != nil {
			t.Fatal(err)
		}
		var all []ActionKind
		for p.Playing() {
			all = append(all, p.Advance(step)...)
		}
		return all
	}

	fine := run(10 * time.Millisecond)
	coarse := run(10 * time.Second)
	if len(fine) != len(rec.Actions) || len(coarse) != len(rec.Actions) {
		t.Fatalf("released %d/%d actions, want %d", len(fine), len(coarse), len(rec.Actions))
	}
	for i := range fine {
		if fine[i] != coarse[i] {
			t.Errorf("action %d differs: %v vs %v", i, fine[i], coarse[i])
		}
	}
}
