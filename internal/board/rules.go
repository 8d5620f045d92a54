package board

// CanMove1 reports whether p may land on cell e by a 1-range move: e is
// empty, or holds an enemy top piece p captures under the RPS relation.
func CanMove1(b *Board, p Piece, e int) bool {
	target := b.GetPiece(e)
	if IsEmpty(target) {
		return true
	}
	if ColourOf(Top(target)) == ColourOf(p) {
		return false
	}
	return CanTake(p, Top(target))
}

// CanMove2 reports whether p may land on cell e by a 2-range move from s:
// the midpoint of (s, e) must be empty, and e itself must be empty or hold
// an enemy (of either type — unlike a 1-range move, a 2-range landing does
// not require the RPS relation to hold; only same-colour destinations are
// rejected). This loose rule, not a repeat of CanMove1's RPS check, is what
// the reference move count is built on.
func CanMove2(b *Board, p Piece, s, e int) bool {
	mid := -1
	for _, nb := range N2(s) {
		if nb.End == e {
			mid = nb.Mid
			break
		}
	}
	if mid == -1 {
		return false
	}
	if !IsEmpty(b.GetPiece(mid)) {
		return false
	}
	target := b.GetPiece(e)
	if IsEmpty(target) {
		return true
	}
	return ColourOf(Top(target)) != ColourOf(p)
}

// CanStack reports whether p may stack onto cell e: e holds an ally single
// piece (not already a stack); if p is Wise, e must hold an ally Wise.
func CanStack(b *Board, p Piece, e int) bool {
	target := b.GetPiece(e)
	if IsEmpty(target) || IsStack(target) {
		return false
	}
	if ColourOf(Top(target)) != ColourOf(p) {
		return false
	}
	if IsWise(p) && !IsWise(Top(target)) {
		return false
	}
	return true
}

// CanUnstack reports whether the top piece p of a stack may split off onto
// cell e: e is empty, or holds a capturable enemy of p.
func CanUnstack(b *Board, p Piece, e int) bool {
	return CanMove1(b, p, e)
}

// IsActionLegal regenerates the legal action set for side and reports
// whether action is a member of it. Used only at the external boundary
// (UGI query islegal); the search engine trusts its own generator and
// never calls this.
func IsActionLegal(b *Board, side Colour, action Action) bool {
	for _, a := range GenerateActions(b, side) {
		if a == action {
			return true
		}
	}
	return false
}

// IsActionWin reports whether action moves a non-Wise piece of its mover's
// side onto the opposing back row: end is always checked, and mid is also
// checked when the action has one. It is the terminal test used by the
// search and by perft, applied to an action before it is played, whereas
// Board.IsWin/GetWinner inspect a position.
func IsActionWin(b *Board, action Action) bool {
	return b.isActionWin(action.Start, action.Mid, action.End)
}
