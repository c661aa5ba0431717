package puzzle

import "fmt"

// Dir is a vertical movement direction for the player.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	if d == DirUp {
		return "Up"
	}
	return "Down"
}

// Pos is a grid position.
type Pos struct {
	Row int
	Col int
}

// RowBlock is an occupied cell within a row, reported by RowBlocks.
type RowBlock struct {
	Col  int
	Kind Kind
}

// Board holds the grid of block cells plus the player's current block and
// row. The player sits to the right of the grid and throws leftward, so
// within a row the cell with the highest column is the nearest target.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []Kind

	player    Kind
	playerRow int
}

// NewBoard creates a board from an initial grid. The cells slice is copied.
// Malformed input (zero dimensions, mismatched slice length, out-of-range
// start row) is a construction-time error; a board is never built in an
// inconsistent state.
func NewBoard(rows, cols int, cells []Kind, player Kind, playerRow int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("puzzle: invalid board dimensions %dx%d", rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("puzzle: cell count %d does not match %dx%d grid", len(cells), rows, cols)
	}
	if playerRow < 0 || playerRow >= rows {
		return nil, fmt.Errorf("puzzle: start row %d outside grid of %d rows", playerRow, rows)
	}
	if player == KindNone {
		return nil, fmt.Errorf("puzzle: player must start holding a block")
	}
	b := &Board{
		rows:      rows,
		cols:      cols,
		cells:     make([]Kind, len(cells)),
		player:    player,
		playerRow: playerRow,
	}
	copy(b.cells, cells)
	return b, nil
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns.
func (b *Board) Cols() int { return b.cols }

// Player returns the block the player currently holds.
// KindNone after a win, or when a chain consumed the whole row.
func (b *Board) Player() Kind { return b.player }

// PlayerRow returns the row the player is aiming at.
func (b *Board) PlayerRow() int { return b.playerRow }

// At returns the kind at a position, or KindNone outside the grid.
func (b *Board) At(row, col int) Kind {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return KindNone
	}
	return b.cells[row*b.cols+col]
}

func (b *Board) clear(row, col int) {
	b.cells[row*b.cols+col] = KindNone
}

// MovePlayer shifts the player's row by one within grid bounds.
// Returns whether movement occurred; false at a grid edge.
func (b *Board) MovePlayer(d Dir) bool {
	switch d {
	case DirUp:
		if b.playerRow == 0 {
			return false
		}
		b.playerRow--
	case DirDown:
		if b.playerRow == b.rows-1 {
			return false
		}
		b.playerRow++
	}
	return true
}

// RowBlocks returns the occupied cells of a row ordered from the throw
// origin outward, nearest target first.
func (b *Board) RowBlocks(row int) []RowBlock {
	if row < 0 || row >= b.rows {
		return nil
	}
	blocks := make([]RowBlock, 0, b.cols)
	for col := b.cols - 1; col >= 0; col-- {
		if k := b.At(row, col); k != KindNone {
			blocks = append(blocks, RowBlock{Col: col, Kind: k})
		}
	}
	return blocks
}

// IsEmpty reports whether no occupied cells remain (the win condition).
func (b *Board) IsEmpty() bool {
	for _, k := range b.cells {
		if k != KindNone {
			return false
		}
	}
	return true
}

// Remaining returns the number of occupied cells.
func (b *Board) Remaining() int {
	n := 0
	for _, k := range b.cells {
		if k != KindNone {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Kind, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:      b.rows,
		cols:      b.cols,
		cells:     cells,
		player:    b.player,
		playerRow: b.playerRow,
	}
}

// Equal reports whether two boards have identical grids, player block and
// player row. Used by determinism tests and the replay contract.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	if b.player != other.player || b.playerRow != other.playerRow {
		return false
	}
	for i, k := range b.cells {
		if k != other.cells[i] {
			return false
		}
	}
	return true
}

// Snapshot is a read-only copy of the board state for the presentation layer.
type Snapshot struct {
	Rows      int
	Cols      int
	Cells     [][]Kind // Cells[row][col]
	Player    Kind
	PlayerRow int
	Remaining int
}

// Snapshot returns a copy of the current board state.
func (b *Board) Snapshot() Snapshot {
	cells := make([][]Kind, b.rows)
	for r := 0; r < b.rows; r++ {
		cells[r] = make([]Kind, b.cols)
		copy(cells[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return Snapshot{
		Rows:      b.rows,
		Cols:      b.cols,
		Cells:     cells,
		Player:    b.player,
		PlayerRow: b.playerRow,
		Remaining: b.Remaining(),
	}
}
