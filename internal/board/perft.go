package board

// Perft counts the leaf nodes of the pseudo-legal game tree rooted at
// (b, side) to the given depth. At depth 1 every pseudo-legal action is
// counted, including ones that immediately win. Below the root (depth > 1)
// an action that itself wins is dropped from the count and never
// recursed into — it is neither a counted leaf nor an internal node. This
// asymmetry is deliberate: it is what the reference node counts in the
// design notes were produced by, not an oversight to be "fixed".
func Perft(b *Board, side Colour, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	actions := GenerateActions(b, side)
	if depth == 1 {
		return uint64(len(actions))
	}

	other := White
	if side == White {
		other = Black
	}

	var nodes uint64
	for _, a := range actions {
		if IsActionWin(b, a) {
			continue
		}
		child := b.Clone()
		child.PlayAction(a.Start, a.Mid, a.End)
		nodes += Perft(child, other, depth-1)
	}
	return nodes
}
