// Package puzzle provides the core resolution logic for the block-throwing
// puzzle: the board, the throw/annihilation algorithm and win/fail detection.
// This package is UI-agnostic and deterministic.
package puzzle

// Kind identifies a block's matchable category.
type Kind uint8

const (
	KindNone Kind = iota // empty cell
	KindS
	KindX
	KindO
	KindT
	KindZ
	KindW
	KindJoker // matches every other kind
)

// String returns the display rune for a kind.
func (k Kind) String() string {
	switch k {
	case KindS:
		return "S"
	case KindX:
		return "X"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	case KindW:
		return "W"
	case KindJoker:
		return "?"
	default:
		return "."
	}
}

// ParseKind converts a level-file rune to a kind.
// Each kind has several aliases so level authors can pick whatever reads
// best in a fixed-width layout. Unknown runes map to KindNone.
func ParseKind(r rune) Kind {
	switch r {
	case 'S', 's', '$', '1':
		return KindS
	case 'X', 'x', '%', '2':
		return KindX
	case 'O', 'o', '@', '3':
		return KindO
	case 'T', 't', '=', '4':
		return KindT
	case 'Z', 'z', '+', '5':
		return KindZ
	case 'W', 'w', ':', '6':
		return KindW
	case '?':
		return KindJoker
	default:
		return KindNone
	}
}

// Matches reports whether a thrown block of kind a annihilates a block of
// kind b. The relation is symmetric and reflexive; Joker matches everything.
// KindNone never matches anything, including itself.
func Matches(a, b Kind) bool {
	if a == KindNone || b == KindNone {
		return false
	}
	return a == b || a == KindJoker || b == KindJoker
}
