package puzzle

import "testing"

// boardFromRows builds a board from string rows, one rune per cell.
// '.' is an empty cell; block runes follow ParseKind.
func boardFromRows(t *testing.T, rows []string, player Kind, playerRow int) *Board {
	t.Helper()
	cols := len(rows[0])
	cells := make([]Kind, 0, len(rows)*cols)
	for _, r := range rows {
		if len(r) != cols {
			t.Fatalf("ragged test rows: %q", r)
		}
		for _, ch := range r {
			cells = append(cells, ParseKind(ch))
		}
	}
	b, err := NewBoard(len(rows), cols, cells, player, playerRow)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestNewBoardRejectsMalformedInput(t *testing.T) {
	cells := make([]Kind, 6)
	tests := []struct {
		name      string
		rows, cols int
		cells     []Kind
		player    Kind
		playerRow int
	}{
		{"zero rows", 0, 3, nil, KindS, 0},
		{"cell count mismatch", 2, 3, cells[:4], KindS, 0},
		{"start row below grid", 2, 3, cells, KindS, 2},
		{"negative start row", 2, 3, cells, KindS, -1},
		{"no starting block", 2, 3, cells, KindNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBoard(tt.rows, tt.cols, tt.cells, tt.player, tt.playerRow); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestMovePlayerStopsAtEdges(t *testing.T) {
	b := boardFromRows(t, []string{"S..", "X..", "O.."}, KindJoker, 1)

	if !b.MovePlayer(DirUp) {
		t.Error("expected move up from middle row")
	}
	if b.PlayerRow() != 0 {
		t.Fatalf("player row = %d, want 0", b.PlayerRow())
	}
	if b.MovePlayer(DirUp) {
		t.Error("expected move up at top edge to be rejected")
	}

	b.MovePlayer(DirDown)
	b.MovePlayer(DirDown)
	if b.PlayerRow() != 2 {
		t.Fatalf("player row = %d, want 2", b.PlayerRow())
	}
	if b.MovePlayer(DirDown) {
		t.Error("expected move down at bottom edge to be rejected")
	}
}

func TestRowBlocksOrderedFromThrowOrigin(t *testing.T) {
	// Throw direction is right-to-left: highest column is the nearest target.
	b := boardFromRows(t, []string{"SX.O."}, KindS, 0)

	blocks := b.RowBlocks(0)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if blocks[0].Col != 3 || blocks[0].Kind != KindO {
		t.Errorf("nearest block = (%d,%v), want (3,O)", blocks[0].Col, blocks[0].Kind)
	}
	if blocks[1].Col != 1 || blocks[1].Kind != KindX {
		t.Errorf("second block = (%d,%v), want (1,X)", blocks[1].Col, blocks[1].Kind)
	}
	if blocks[2].Col != 0 || blocks[2].Kind != KindS {
		t.Errorf("farthest block = (%d,%v), want (0,S)", blocks[2].Col, blocks[2].Kind)
	}
}

func TestRowBlocksEmptyRow(t *testing.T) {
	b := boardFromRows(t, []string{"S..", "..."}, KindS, 0)
	if got := b.RowBlocks(1); len(got) != 0 {
		t.Errorf("empty row returned %d blocks", len(got))
	}
	if got := b.RowBlocks(5); got != nil {
		t.Errorf("out-of-range row returned %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := boardFromRows(t, []string{"SS.", "XX."}, KindS, 0)
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone differs from original")
	}

	ResolveThrow(b, 0)
	if b.Equal(c) {
		t.Error("mutating the original changed the clone")
	}
}

func TestSnapshotCopiesCells(t *testing.T) {
	b := boardFromRows(t, []string{"S.X"}, KindJoker, 0)
	snap := b.Snapshot()

	if snap.Rows != 1 || snap.Cols != 3 {
		t.Fatalf("snapshot dims %dx%d, want 1x3", snap.Rows, snap.Cols)
	}
	if snap.Cells[0][0] != KindS || snap.Cells[0][2] != KindX {
		t.Error("snapshot cells do not match board")
	}
	if snap.Remaining != 2 {
		t.Errorf("snapshot remaining = %d, want 2", snap.Remaining)
	}

	snap.Cells[0][0] = KindNone
	if b.At(0, 0) != KindS {
		t.Error("mutating snapshot changed the board")
	}
}
