package board

import (
	"strconv"
	"strings"
)

// ToPositionString renders the board as a FEN-like string: seven
// '/'-separated rows (row g first, row a last), each row a left-to-right
// sequence of cells. An occupied cell is two characters (<top><bottom>,
// '-' for an absent half); a run of consecutive empty cells is written as
// its decimal length. The side to move ('w'/'b') follows as a separate
// token; half-move and full-move counters are a Game concern, not the
// board's.
func ToPositionString(b *Board, side Colour) string {
	var sb strings.Builder
	idx := 0
	for r := 0; r < 7; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		emptyRun := 0
		flush := func() {
			if emptyRun > 0 {
				sb.WriteString(strconv.Itoa(emptyRun))
				emptyRun = 0
			}
		}
		for c := 0; c < rowWidths[r]; c++ {
			p := b.GetPiece(idx)
			if IsEmpty(p) {
				emptyRun++
			} else {
				flush()
				top, _ := nibbleToChar(Top(p))
				bottom, _ := nibbleToChar(Bottom(p))
				sb.WriteByte(top)
				sb.WriteByte(bottom)
			}
			idx++
		}
		flush()
	}
	sb.WriteByte(' ')
	if side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// ParsePositionString parses the format produced by ToPositionString: a
// row is scanned left to right, a run of digits expanding to that many
// empty cells, anything else consumed two characters at a time as a
// top/bottom cell token.
func ParsePositionString(s string) (*Board, Colour, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, 0, &ParseError{Kind: InvalidFen, Value: s}
	}
	cellPart, sideField := fields[0], fields[1]

	rows := strings.Split(cellPart, "/")
	if len(rows) != 7 {
		return nil, 0, &ParseError{Kind: InvalidFen, Value: s}
	}

	b := &Board{}
	idx := 0
	for r, row := range rows {
		filled := 0
		i := 0
		for i < len(row) {
			if row[i] >= '0' && row[i] <= '9' {
				j := i
				for j < len(row) && row[j] >= '0' && row[j] <= '9' {
					j++
				}
				n, err := strconv.Atoi(row[i:j])
				if err != nil {
					return nil, 0, &ParseError{Kind: InvalidInt, Value: row[i:j]}
				}
				idx += n
				filled += n
				i = j
				continue
			}
			if i+2 > len(row) {
				return nil, 0, &ParseError{Kind: InvalidPiece, Value: row[i:]}
			}
			top, ok1 := charToNibble(row[i])
			bottom, ok2 := charToNibble(row[i+1])
			if !ok1 || !ok2 {
				return nil, 0, &ParseError{Kind: InvalidPiece, Value: row[i : i+2]}
			}
			if top != 0 || bottom != 0 {
				b.SetPiece(idx, StackOn(top, bottom))
			}
			idx++
			filled++
			i += 2
		}
		if filled != rowWidths[r] {
			return nil, 0, &ParseError{Kind: InvalidRowLength, Value: row}
		}
	}

	var side Colour
	switch sideField {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, 0, &ParseError{Kind: InvalidPlayer, Value: sideField}
	}

	return b, side, nil
}

// StartingPositionString is the canonical position string for the Pijersi
// starting position, side to move white.
func StartingPositionString() string {
	return ToPositionString(NewBoard(), White)
}
