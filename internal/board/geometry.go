package board

// NCells is the number of playable cells on the hexagonal board.
const NCells = 45

// NullIndex marks an unused cell slot in an action triple.
const NullIndex = 0xFF

// rowWidths are the seven row lengths of the board, width-7 rows
// alternating with width-6 rows: row 0 is black's back row ("g"), row 6 is
// white's back row ("a"). A width-6 row sits half a cell to the right of
// its width-7 neighbours, which is what makes the board hexagonal rather
// than a plain rectangle.
var rowWidths = [7]int{6, 7, 6, 7, 6, 7, 6}

// rowStart[r] is the cell index of column 0 of row r.
var rowStart [7]int

// rowOfCell[i] / colOfCell[i] are the row/column of cell i.
var rowOfCell [NCells]int
var colOfCell [NCells]int

func init() {
	acc := 0
	for r := 0; r < 7; r++ {
		rowStart[r] = acc
		acc += rowWidths[r]
	}
	for r := 0; r < 7; r++ {
		for c := 0; c < rowWidths[r]; c++ {
			rowOfCell[rowStart[r]+c] = r
			colOfCell[rowStart[r]+c] = c
		}
	}
}

// CoordsToIndex converts a (row, col) pair to a cell index.
func CoordsToIndex(row, col int) int { return rowStart[row] + col }

// IndexToCoords converts a cell index to its (row, col) pair.
func IndexToCoords(i int) (int, int) { return rowOfCell[i], colOfCell[i] }

// rowLetters maps row index to its display letter: row 0 is "g" (black's
// back row), row 6 is "a" (white's back row).
var rowLetters = [7]byte{'g', 'f', 'e', 'd', 'c', 'b', 'a'}

// IndexToString renders a cell index as e.g. "a1".."g7".
func IndexToString(i int) string {
	r, c := IndexToCoords(i)
	return string([]byte{rowLetters[r], byte('1' + c)})
}

// StringToIndex parses a two-character cell string such as "a1". ok is
// false for any malformed or out-of-range string.
func StringToIndex(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	var row = -1
	for r, ch := range rowLetters {
		if s[0] == ch {
			row = r
			break
		}
	}
	if row == -1 {
		return 0, false
	}
	if s[1] < '1' || s[1] > '7' {
		return 0, false
	}
	col := int(s[1] - '1')
	if col >= rowWidths[row] {
		return 0, false
	}
	return CoordsToIndex(row, col), true
}

// rowColOffsets gives the two column offsets, relative to a cell's own
// column, at which its neighbours sit in the row immediately above and
// immediately below it. A width-6 row's neighbours in either adjacent
// (width-7) row are at {col, col+1}; a width-7 row's neighbours in either
// adjacent (width-6) row are at {col-1, col}. The same pair serves both
// the row above and the row below.
func rowColOffsets(row int) [2]int {
	if rowWidths[row] == 6 {
		return [2]int{0, 1}
	}
	return [2]int{-1, 0}
}

// vertical looks up the cell reached from (row, col) by moving rowDelta
// rows (+-1) and picking slot 0 or 1 of rowColOffsets(row).
func vertical(row, col, rowDelta, slot int) (int, int, bool) {
	nr := row + rowDelta
	if nr < 0 || nr > 6 {
		return 0, 0, false
	}
	nc := col + rowColOffsets(row)[slot]
	if nc < 0 || nc >= rowWidths[nr] {
		return 0, 0, false
	}
	return nr, nc, true
}

// Neighbour2 is a two-step destination together with its fixed midpoint.
type Neighbour2 struct {
	Mid, End int
}

var n1 [NCells][]int
var n1Bits [NCells]Bitboard
var n2 [NCells][]Neighbour2
var blockerMask [NCells]Bitboard

func addN1(i, mr, mc int) int {
	mIdx := CoordsToIndex(mr, mc)
	n1[i] = append(n1[i], mIdx)
	n1Bits[i] = n1Bits[i].Set(mIdx)
	return mIdx
}

func addN2(i, mIdx, er, ec int) {
	eIdx := CoordsToIndex(er, ec)
	n2[i] = append(n2[i], Neighbour2{Mid: mIdx, End: eIdx})
	blockerMask[i] = blockerMask[i].Set(mIdx)
}

func init() {
	for i := 0; i < NCells; i++ {
		row, col := IndexToCoords(i)

		// East / West: same row, two-cell line stays in the same row.
		if col+1 < rowWidths[row] {
			addN1(i, row, col+1)
			if col+2 < rowWidths[row] {
				addN2(i, CoordsToIndex(row, col+1), row, col+2)
			}
		}
		if col-1 >= 0 {
			addN1(i, row, col-1)
			if col-2 >= 0 {
				addN2(i, CoordsToIndex(row, col-1), row, col-2)
			}
		}

		// The four diagonal directions: up/down, each with two slots.
		// A straight 2-step diagonal move alternates slots as it crosses
		// the row-parity boundary (see rowColOffsets).
		for _, rowDelta := range [2]int{-1, 1} {
			for slot := 0; slot < 2; slot++ {
				mr, mc, ok := vertical(row, col, rowDelta, slot)
				if !ok {
					continue
				}
				mIdx := addN1(i, mr, mc)
				er, ec, ok2 := vertical(mr, mc, rowDelta, 1-slot)
				if !ok2 {
					continue
				}
				addN2(i, mIdx, er, ec)
			}
		}
	}
}

// N1 returns the list of 1-step neighbours of cell i.
func N1(i int) []int { return n1[i] }

// N1Bitboard returns the 1-step neighbours of cell i as a bitboard.
func N1Bitboard(i int) Bitboard { return n1Bits[i] }

// N2 returns the list of (midpoint, destination) pairs reachable from cell i
// by a 2-step move along one of the board's six straight lines.
func N2(i int) []Neighbour2 { return n2[i] }

// BlockerMask returns the bitboard of midpoint cells whose occupancy
// determines which 2-step destinations are reachable from cell i.
func BlockerMask(i int) Bitboard { return blockerMask[i] }

// IsBlackHome reports whether i is one of black's home cells (0..5),
// the win row for white.
func IsBlackHome(i int) bool { return i <= 5 }

// IsWhiteHome reports whether i is one of white's home cells (39..44),
// the win row for black.
func IsWhiteHome(i int) bool { return i >= 39 }
