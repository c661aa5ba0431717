package puzzle

// Signal is the session-state outcome of one resolved throw.
type Signal uint8

const (
	SignalContinue Signal = iota // throw accepted, blocks remain
	SignalWin                    // grid empty after the throw
	SignalNoMatch                // throw rejected, board unchanged
)

// String returns the string representation of a signal.
func (s Signal) String() string {
	switch s {
	case SignalContinue:
		return "Continue"
	case SignalWin:
		return "Win"
	case SignalNoMatch:
		return "NoMatch"
	default:
		return "Unknown"
	}
}

// ThrowOutcome is the result of resolving one throw.
type ThrowOutcome struct {
	Removed  []Pos  // annihilated cells, empty for a rejected throw
	NewBlock Kind   // block picked up from the stopping cell, KindNone if the chain exhausted the row
	Signal   Signal
}

// ResolveThrow applies the player's throw to the given row and mutates the
// board accordingly.
//
// The nearest occupied cell must match the thrown block, otherwise the throw
// is rejected and the board is untouched. On a match the thrown block
// annihilates that cell and every consecutive occupied cell outward whose
// kind matches the original thrown block; the first non-matching occupied
// cell stops the chain, is removed from the grid and becomes the player's
// new block. Emptiness is checked before the pickup is reported: clearing
// the grid wins even when a stopping cell was assigned.
func ResolveThrow(b *Board, row int) ThrowOutcome {
	thrown := b.player
	blocks := b.RowBlocks(row)
	if len(blocks) == 0 {
		return ThrowOutcome{Signal: SignalNoMatch}
	}
	if !Matches(thrown, blocks[0].Kind) {
		return ThrowOutcome{Signal: SignalNoMatch}
	}

	removed := make([]Pos, 0, len(blocks))
	newBlock := KindNone
	for _, blk := range blocks {
		if Matches(thrown, blk.Kind) {
			b.clear(row, blk.Col)
			removed = append(removed, Pos{Row: row, Col: blk.Col})
			continue
		}
		// Stopping cell: removed from the grid but held, not annihilated.
		newBlock = blk.Kind
		b.clear(row, blk.Col)
		break
	}

	if b.IsEmpty() {
		b.player = KindNone
		return ThrowOutcome{Removed: removed, Signal: SignalWin}
	}

	b.player = newBlock
	return ThrowOutcome{Removed: removed, NewBlock: newBlock, Signal: SignalContinue}
}

// NoMovesLeft reports whether the player is stuck: blocks remain on the
// grid but no row's nearest occupied cell matches the held block. A held
// Joker can always hit something while blocks remain; a player holding
// nothing (a chain consumed its whole row without a pickup) can never
// throw again.
func NoMovesLeft(b *Board) bool {
	if b.IsEmpty() {
		return false
	}
	if b.player == KindNone {
		return true
	}
	for row := 0; row < b.rows; row++ {
		blocks := b.RowBlocks(row)
		if len(blocks) == 0 {
			continue
		}
		if Matches(b.player, blocks[0].Kind) {
			return false
		}
	}
	return true
}
