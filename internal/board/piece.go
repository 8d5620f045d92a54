// Package board implements the Pijersi board representation: piece
// encoding, the 45-cell hexagonal geometry, bitboards, move generation,
// rules, evaluation and Zobrist hashing.
package board

// A Piece is an 8-bit cell value. The low nibble holds the top piece, the
// high nibble the bottom piece of a stack (zero when the cell holds a
// single piece or is empty). Within a nibble, bit 0 is the presence flag,
// bit 1 is the colour, and bits 2-3 are the type.
type Piece = uint8

// Colour of a piece.
type Colour = uint8

const (
	White Colour = 0
	Black Colour = 1
)

// Type of a piece, per the rock-paper-scissors relation (Wise is inert).
type Type = uint8

const (
	Scissors Type = 0
	Paper    Type = 1
	Rock     Type = 2
	Wise     Type = 3
)

const (
	presenceBit uint8 = 0b0001
	colourBit   uint8 = 0b0010
	typeShift          = 2
	typeMask    uint8 = 0b1100
	nibbleMask  uint8 = 0b1111
)

// StackThreshold is the smallest cell value that denotes a stack (a nonzero
// bottom nibble). Single pieces and the empty cell are always < 16.
const StackThreshold uint8 = 16

const CellEmpty Piece = 0

// nibble builds a single top/bottom half of a cell byte.
func nibble(c Colour, t Type) uint8 {
	return presenceBit | (c << 1) | (t << typeShift)
}

// Named nibble values, one per (colour, type) combination.
var (
	WhiteScissors = nibble(White, Scissors)
	WhitePaper    = nibble(White, Paper)
	WhiteRock     = nibble(White, Rock)
	WhiteWise     = nibble(White, Wise)
	BlackScissors = nibble(Black, Scissors)
	BlackPaper    = nibble(Black, Paper)
	BlackRock     = nibble(Black, Rock)
	BlackWise     = nibble(Black, Wise)
)

// Top returns the top-piece nibble of a cell value.
func Top(p Piece) uint8 { return p & nibbleMask }

// Bottom returns the bottom-piece nibble of a cell value (0 if not a stack).
func Bottom(p Piece) uint8 { return p >> 4 }

// IsEmpty reports whether the cell holds no piece.
func IsEmpty(p Piece) bool { return p == CellEmpty }

// IsStack reports whether the cell holds two pieces.
func IsStack(p Piece) bool { return p >= StackThreshold }

// ColourOf returns the colour of the top piece.
func ColourOf(p Piece) Colour { return (p & colourBit) >> 1 }

// TypeOf returns the type of the top piece.
func TypeOf(p Piece) Type { return (p & typeMask) >> typeShift }

// IsWise reports whether the top piece is Wise.
func IsWise(p Piece) bool { return TypeOf(p) == Wise }

// StackOn combines a top nibble over a bottom nibble into a stack cell value.
func StackOn(top, bottom uint8) Piece { return top | (bottom << 4) }

// CanTake reports whether a piece of type `attacker` captures a top piece of
// type `target`, per the rock-paper-scissors relation: Scissors beats
// Paper, Paper beats Rock, Rock beats Scissors. Wise never captures and is
// never captured.
func CanTake(attacker, target Piece) bool {
	at := attacker & typeMask
	tt := target & typeMask
	scissors, paper, rock := uint8(Scissors)<<typeShift, uint8(Paper)<<typeShift, uint8(Rock)<<typeShift
	return (at == scissors && tt == paper) ||
		(at == paper && tt == rock) ||
		(at == rock && tt == scissors)
}

// PieceToIndex returns the dense 0..7 bitboard index for a nibble value,
// one per (colour, type) combination. Callers add 8 to address the
// matching bottom-piece bitboard (8..15).
func PieceToIndex(nibbleValue uint8) int {
	c := int((nibbleValue & colourBit) >> 1)
	t := int((nibbleValue & typeMask) >> typeShift)
	return c*4 + t
}

// charToNibble maps an ASCII cell-half character to a nibble value.
func charToNibble(c byte) (uint8, bool) {
	switch c {
	case '-':
		return 0, true
	case 'S':
		return WhiteScissors, true
	case 'P':
		return WhitePaper, true
	case 'R':
		return WhiteRock, true
	case 'W':
		return WhiteWise, true
	case 's':
		return BlackScissors, true
	case 'p':
		return BlackPaper, true
	case 'r':
		return BlackRock, true
	case 'w':
		return BlackWise, true
	}
	return 0, false
}

// nibbleToChar is the inverse of charToNibble; ok is false for an
// unrecognised nibble value (any value other than the nine listed).
func nibbleToChar(n uint8) (byte, bool) {
	switch n {
	case 0:
		return '-', true
	case WhiteScissors:
		return 'S', true
	case WhitePaper:
		return 'P', true
	case WhiteRock:
		return 'R', true
	case WhiteWise:
		return 'W', true
	case BlackScissors:
		return 's', true
	case BlackPaper:
		return 'p', true
	case BlackRock:
		return 'r', true
	case BlackWise:
		return 'w', true
	}
	return 0, false
}
