package board

import "strings"

// Board holds the full position as 16 dense bitboards: indices 0-3 are the
// white Scissors/Paper/Rock/Wise top bitboards, 4-7 the same for black,
// 8-11 white Scissors/Paper/Rock/Wise used as a stack's bottom piece, and
// 12-15 black bottom pieces. A single piece sets only its top bit; a stack
// sets both its top piece's top bit and its bottom piece's bottom bit at
// the same cell.
type Board struct {
	bb [16]Bitboard
}

// NewBoard returns a board set to the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

func indexToNibble(idx int) uint8 {
	c := Colour(idx / 4)
	t := Type(idx % 4)
	return nibble(c, t)
}

// SetPiece places cell value p (a single piece or a stack) at cell i. The
// cell must be empty; callers that overwrite an occupant must RemovePiece
// first.
func (b *Board) SetPiece(i int, p Piece) {
	if top := Top(p); top != 0 {
		idx := PieceToIndex(top)
		b.bb[idx] = b.bb[idx].Set(i)
	}
	if bottom := Bottom(p); bottom != 0 {
		idx := 8 + PieceToIndex(bottom)
		b.bb[idx] = b.bb[idx].Set(i)
	}
}

// UnsetPiece clears cell value p (as previously set by SetPiece) from cell
// i, leaving the cell empty.
func (b *Board) UnsetPiece(i int, p Piece) {
	if top := Top(p); top != 0 {
		idx := PieceToIndex(top)
		b.bb[idx] = b.bb[idx].Clear(i)
	}
	if bottom := Bottom(p); bottom != 0 {
		idx := 8 + PieceToIndex(bottom)
		b.bb[idx] = b.bb[idx].Clear(i)
	}
}

// GetPiece reconstructs the cell value at i by scanning the 16 bitboards.
func (b *Board) GetPiece(i int) Piece {
	var top, bottom uint8
	for idx := 0; idx < 8; idx++ {
		if b.bb[idx].Has(i) {
			top = indexToNibble(idx)
			break
		}
	}
	for idx := 8; idx < 16; idx++ {
		if b.bb[idx].Has(i) {
			bottom = indexToNibble(idx - 8)
			break
		}
	}
	return StackOn(top, bottom)
}

// RemovePiece clears whatever occupies cell i.
func (b *Board) RemovePiece(i int) {
	p := b.GetPiece(i)
	b.UnsetPiece(i, p)
}

// All returns the bitboard of occupied cells.
func (b *Board) All() Bitboard {
	var r Bitboard
	for idx := 0; idx < 8; idx++ {
		r |= b.bb[idx]
	}
	return r
}

func (b *Board) colourTop(c Colour) Bitboard {
	var r Bitboard
	base := int(c) * 4
	for t := 0; t < 4; t++ {
		r |= b.bb[base+t]
	}
	return r
}

// White returns the bitboard of cells whose top piece is white.
func (b *Board) White() Bitboard { return b.colourTop(White) }

// Black returns the bitboard of cells whose top piece is black.
func (b *Board) Black() Bitboard { return b.colourTop(Black) }

// Colour returns White() or Black() for the given side.
func (b *Board) Colour(side Colour) Bitboard {
	if side == White {
		return b.White()
	}
	return b.Black()
}

func (b *Board) notWise(c Colour) Bitboard {
	base := int(c) * 4
	return b.bb[base] | b.bb[base+1] | b.bb[base+2]
}

// WhiteNotWise returns the bitboard of cells whose top piece is a white
// non-Wise piece.
func (b *Board) WhiteNotWise() Bitboard { return b.notWise(White) }

// BlackNotWise returns the bitboard of cells whose top piece is a black
// non-Wise piece.
func (b *Board) BlackNotWise() Bitboard { return b.notWise(Black) }

// SameBottom returns the bitboard of cells that are already a stack whose
// bottom piece belongs to side.
func (b *Board) SameBottom(side Colour) Bitboard {
	var r Bitboard
	base := 8 + int(side)*4
	for t := 0; t < 4; t++ {
		r |= b.bb[base+t]
	}
	return r
}

// SameWise returns the bitboard of cells whose top piece is side's Wise.
func (b *Board) SameWise(side Colour) Bitboard {
	return b.bb[int(side)*4+3]
}

// Victim returns the bitboard of enemy cells that attacker legally
// captures, per the rock-paper-scissors relation. A Wise attacker never
// captures, so its victim set is always empty.
func (b *Board) Victim(attacker Piece) Bitboard {
	t := TypeOf(attacker)
	var target Type
	switch t {
	case Scissors:
		target = Paper
	case Paper:
		target = Rock
	case Rock:
		target = Scissors
	default:
		return 0
	}
	opp := Black
	if ColourOf(attacker) == Black {
		opp = White
	}
	return b.bb[int(opp)*4+int(target)]
}

// AvailableMoves1 returns the 1-step destinations reachable from i by
// piece: empty cells, or enemy cells piece legally captures.
func (b *Board) AvailableMoves1(i int, piece Piece) Bitboard {
	return N1Bitboard(i) & (b.All().Not() | b.Victim(piece))
}

// AvailableMoves2 returns the 2-step destinations reachable from i by
// piece along the board's six straight lines, subject to the same
// occupancy/capture rule as AvailableMoves1.
func (b *Board) AvailableMoves2(i int, piece Piece) Bitboard {
	emptyMid := BlockerMask(i) & b.All().Not()
	reachable := lookup2(i, emptyMid)
	return reachable & (b.All().Not() | b.Victim(piece))
}

// AvailableStacks returns the 1-step cells onto which piece may stack: an
// ally cell that is not already a stack with piece's colour on the bottom.
func (b *Board) AvailableStacks(i int, piece Piece) Bitboard {
	side := ColourOf(piece)
	ally := b.Colour(side)
	return N1Bitboard(i) & ally & b.SameBottom(side).Not()
}

// AvailableUnstacks returns the 1-step destinations a stack's top piece may
// move to when separating from its bottom piece.
func (b *Board) AvailableUnstacks(i int, piece Piece) Bitboard {
	return N1Bitboard(i) & (b.All().Not() | b.Victim(piece))
}

func (b *Board) doMove(from, to int) {
	if from == to {
		return
	}
	p := b.GetPiece(from)
	b.UnsetPiece(from, p)
	if cap := b.GetPiece(to); !IsEmpty(cap) {
		b.UnsetPiece(to, cap)
	}
	b.SetPiece(to, p)
}

func (b *Board) doStack(from, to int) {
	fromCell := b.GetPiece(from)
	mover := Top(fromCell)
	moverIdx := PieceToIndex(mover)
	b.bb[moverIdx] = b.bb[moverIdx].Clear(from)
	if IsStack(fromCell) {
		remaining := Bottom(fromCell)
		remIdx := PieceToIndex(remaining)
		b.bb[8+remIdx] = b.bb[8+remIdx].Clear(from)
		b.bb[remIdx] = b.bb[remIdx].Set(from)
	}
	toTop := Top(b.GetPiece(to))
	toIdx := PieceToIndex(toTop)
	b.bb[toIdx] = b.bb[toIdx].Clear(to)
	b.bb[8+toIdx] = b.bb[8+toIdx].Set(to)
	b.bb[moverIdx] = b.bb[moverIdx].Set(to)
}

func (b *Board) doUnstack(from, to int) {
	fromCell := b.GetPiece(from)
	mover := Top(fromCell)
	moverIdx := PieceToIndex(mover)
	b.bb[moverIdx] = b.bb[moverIdx].Clear(from)
	if IsStack(fromCell) {
		remaining := Bottom(fromCell)
		remIdx := PieceToIndex(remaining)
		b.bb[8+remIdx] = b.bb[8+remIdx].Clear(from)
		b.bb[remIdx] = b.bb[remIdx].Set(from)
	}
	if cap := b.GetPiece(to); !IsEmpty(cap) {
		b.UnsetPiece(to, cap)
	}
	b.bb[moverIdx] = b.bb[moverIdx].Set(to)
}

// PlayAction mutates the board to apply the action (start, mid, end). mid
// is NullIndex for a plain 1- or 2-range move. Otherwise the branch taken
// depends on what occupies mid and end: stack-then-move when mid holds an
// ally distinct from start, move-then-stack when end holds an ally distinct
// from start, move-then-unstack otherwise (including end == start, where the
// top piece unstacks back onto the origin).
func (b *Board) PlayAction(start, mid, end int) {
	if mid == NullIndex {
		b.doMove(start, end)
		return
	}
	moverColour := ColourOf(Top(b.GetPiece(start)))

	midCell := b.GetPiece(mid)
	midIsAlly := !IsEmpty(midCell) && ColourOf(Top(midCell)) == moverColour
	if midIsAlly && start != mid {
		b.doStack(start, mid)
		b.doMove(mid, end)
		return
	}

	endCell := b.GetPiece(end)
	endIsAlly := end != start && !IsEmpty(endCell) && ColourOf(Top(endCell)) == moverColour
	if endIsAlly {
		b.doMove(start, mid)
		b.doStack(mid, end)
		return
	}

	b.doMove(start, mid)
	b.doUnstack(mid, end)
}

const whiteWinMask Bitboard = 0x3F       // cells 0..5
const blackWinMask Bitboard = 0x3F << 39 // cells 39..44

// IsWin reports whether either side has reached a winning configuration:
// a white non-Wise piece on black's back row (cells 0..5), or a black
// non-Wise piece on white's back row (cells 39..44).
func (b *Board) IsWin() bool {
	return b.WhiteNotWise()&whiteWinMask != 0 || b.BlackNotWise()&blackWinMask != 0
}

// GetWinner returns the winning side and true if IsWin is true.
func (b *Board) GetWinner() (Colour, bool) {
	if b.WhiteNotWise()&whiteWinMask != 0 {
		return White, true
	}
	if b.BlackNotWise()&blackWinMask != 0 {
		return Black, true
	}
	return 0, false
}

// isActionWin reports whether playing the action (start, mid, end) reaches
// the mover's target home row: white wins by reaching index<=5, black by
// reaching index>=39, Wise excluded. end is always checked; mid is also
// checked when the action has one, so a move that only passes through the
// home row at its midpoint (e.g. a stack-then-move that lands elsewhere)
// still counts as a win.
func (b *Board) isActionWin(start, mid, end int) bool {
	mover := Top(b.GetPiece(start))
	if IsWise(mover) {
		return false
	}
	if ColourOf(mover) == White {
		return (mid != NullIndex && IsBlackHome(mid)) || IsBlackHome(end)
	}
	return (mid != NullIndex && IsWhiteHome(mid)) || IsWhiteHome(end)
}

// CountPieces returns the number of pieces on the board, counting a stack
// as two.
func (b *Board) CountPieces() int {
	singles := b.All().PopCount()
	var stacks Bitboard
	for idx := 8; idx < 16; idx++ {
		stacks |= b.bb[idx]
	}
	return singles + stacks.PopCount()
}

// Init resets the board to the Pijersi starting position.
func (b *Board) Init() {
	*b = Board{}
	set := b.SetPiece

	set(0, BlackScissors)
	set(1, BlackPaper)
	set(2, BlackRock)
	set(3, BlackScissors)
	set(4, BlackPaper)
	set(5, BlackRock)
	set(6, BlackPaper)
	set(7, BlackRock)
	set(8, BlackScissors)
	set(9, StackOn(BlackWise, BlackWise))
	set(10, BlackRock)
	set(11, BlackScissors)
	set(12, BlackPaper)

	set(44, WhiteScissors)
	set(43, WhitePaper)
	set(42, WhiteRock)
	set(41, WhiteScissors)
	set(40, WhitePaper)
	set(39, WhiteRock)
	set(38, WhitePaper)
	set(37, WhiteRock)
	set(36, WhiteScissors)
	set(35, StackOn(WhiteWise, WhiteWise))
	set(34, WhiteRock)
	set(32, WhitePaper)
	set(33, WhiteScissors)
}

// ToPrettyString renders the board as seven lines, one per row, each cell
// as a two-character top/bottom pair separated by spaces.
func (b *Board) ToPrettyString() string {
	var sb strings.Builder
	idx := 0
	for r := 0; r < 7; r++ {
		for c := 0; c < rowWidths[r]; c++ {
			p := b.GetPiece(idx)
			top, _ := nibbleToChar(Top(p))
			bottom, _ := nibbleToChar(Bottom(p))
			sb.WriteByte(top)
			sb.WriteByte(bottom)
			sb.WriteByte(' ')
			idx++
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
