package board

import "math"

// MaxScore bounds the magnitude of any non-terminal evaluation; a win is
// scored at this magnitude so it always dominates material.
const MaxScore int64 = 524288

// BaseBeta is the root search window half-width: alpha starts at -BaseBeta,
// beta at +BaseBeta, wide enough that only an actual win (MaxScore) or loss
// clips it.
const BaseBeta int64 = 262144

// MinScore is returned by the search for a position with no legal
// actions, forcing the side to move to avoid stalemate wherever a legal
// alternative exists.
const MinScore int64 = math.MinInt64

func baseValue(t Type) int64 {
	if t == Wise {
		return 60
	}
	return 100
}

// pieceScore returns the contribution of a single nibble half (top or
// bottom) occupying cell i: its base material value plus a small bonus
// for advancement toward the mover's target back row, signed positive for
// white and negative for black.
func pieceScore(n uint8, i int) int64 {
	if n == 0 {
		return 0
	}
	t := TypeOf(n)
	c := ColourOf(n)
	row, _ := IndexToCoords(i)
	var advance int
	if c == White {
		advance = 6 - row
	} else {
		advance = row
	}
	score := baseValue(t) + int64(advance)*2
	if c == Black {
		score = -score
	}
	return score
}

// CellScore returns cell i's total contribution to Eval: its top and
// bottom halves' pieceScore, summed (the bottom half of a single piece is
// 0, so this also handles non-stacked cells uniformly).
func CellScore(cell Piece, i int) int64 {
	return pieceScore(Top(cell), i) + pieceScore(Bottom(cell), i)
}

// Eval returns the static evaluation of the position from white's
// perspective: the sum of every occupied cell's contribution. Callers
// doing negamax negate it when black is to move.
func Eval(b *Board) int64 {
	var total int64
	for i := 0; i < NCells; i++ {
		total += CellScore(b.GetPiece(i), i)
	}
	return total
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// PositionDetail caches a position's total evaluation alongside each
// cell's individual contribution, so EvaluateActionTerminal can apply a
// delta for a candidate action instead of re-summing all 45 cells. Shared
// across every action considered at one search node.
type PositionDetail struct {
	total int64
	cells [NCells]int64
}

// DetailEval computes b's evaluation together with the per-cell breakdown
// that sums to it. Call once per search node and pass the result to every
// EvaluateActionTerminal call at that node.
func DetailEval(b *Board) PositionDetail {
	var d PositionDetail
	for i := 0; i < NCells; i++ {
		d.cells[i] = CellScore(b.GetPiece(i), i)
		d.total += d.cells[i]
	}
	return d
}

// EvaluateActionTerminal returns the depth-1 evaluation of playing action
// in b, from side's (the mover's) own perspective: positive favors side,
// matching signedEval's sign convention. detail must be DetailEval(b) for
// the same b.
//
// Rather than a Clone+PlayAction+Eval per candidate action, this updates
// only the cells PlayAction's four shapes can touch (start, mid, end),
// subtracting each one's previous contribution from detail.total and
// adding back its post-action contribution — the incremental-evaluation
// shortcut a depth-1 leaf needs in place of a full re-evaluation.
func EvaluateActionTerminal(b *Board, side Colour, action Action, detail PositionDetail) int64 {
	if IsActionWin(b, action) {
		return MaxScore
	}

	start, mid, end := action.Start, action.Mid, action.End
	score := detail.total

	if mid == NullIndex {
		startCell := b.GetPiece(start)
		score -= detail.cells[start]
		score -= detail.cells[end]
		score += CellScore(startCell, end)
	} else {
		startCell := b.GetPiece(start)
		moverColour := ColourOf(Top(startCell))
		midCell := b.GetPiece(mid)
		midIsAlly := !IsEmpty(midCell) && ColourOf(Top(midCell)) == moverColour && mid != start

		switch {
		case midIsAlly:
			// stack then move: start's top stacks onto mid, then the new
			// stack moves on to end.
			landing := StackOn(Top(startCell), Top(midCell))
			remainder := Bottom(startCell)

			score -= detail.cells[start]
			if start != end {
				// when the new stack moves back onto start, it captures
				// the remainder left there.
				score += CellScore(remainder, start)
			}

			score -= detail.cells[mid]
			// mid becomes empty; CellScore(0, mid) == 0.

			if start != end {
				score -= detail.cells[end]
			}
			score += CellScore(landing, end)

		default:
			endCell := b.GetPiece(end)
			endIsAlly := !IsEmpty(endCell) && ColourOf(Top(endCell)) == moverColour

			if endIsAlly {
				// move then stack: start's whole cell travels to mid,
				// then its top stacks onto the ally at end.
				landing := StackOn(Top(startCell), Top(endCell))
				if start == end {
					landing = Top(startCell)
				}
				remainder := Bottom(startCell)

				if start != mid {
					score -= detail.cells[start]
				}
				score -= detail.cells[mid]
				score += CellScore(remainder, mid)

				if start != end {
					score -= detail.cells[end]
				}
				score += CellScore(landing, end)
			} else {
				// move then unstack: start's whole cell travels to mid,
				// then its top splits off onto end.
				remainder := Bottom(startCell)
				top := Top(startCell)

				if start != mid {
					score -= detail.cells[start]
				}
				score -= detail.cells[mid]
				score += CellScore(remainder, mid)

				score -= detail.cells[end]
				score += CellScore(top, end)
			}
		}
	}

	if side == Black {
		return -score
	}
	return score
}
