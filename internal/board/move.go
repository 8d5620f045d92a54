package board

import "fmt"

// Action is a single ply: a start cell, an optional midpoint (NullIndex if
// none), and an end cell. A plain 1- or 2-range move has no midpoint;
// otherwise the midpoint is either the ally a stack forms over, or the cell
// a piece moves to before stacking onto or splitting off towards end,
// depending on what occupies it when the action is played (see
// Board.PlayAction).
type Action struct {
	Start, Mid, End int
}

// Encode packs the action into 24 bits, one byte per cell index (cell
// indices and NullIndex all fit in a byte).
func (a Action) Encode() uint32 {
	return uint32(a.Start)<<16 | uint32(a.Mid)<<8 | uint32(a.End)
}

// DecodeAction is the inverse of Action.Encode.
func DecodeAction(packed uint32) Action {
	return Action{
		Start: int(packed>>16) & 0xFF,
		Mid:   int(packed>>8) & 0xFF,
		End:   int(packed) & 0xFF,
	}
}

// String renders the action as two or three concatenated cell names, e.g.
// "a1c2" for a plain move or "b4c3d4" when a midpoint is present.
func (a Action) String() string {
	if a.Mid == NullIndex {
		return IndexToString(a.Start) + IndexToString(a.End)
	}
	return IndexToString(a.Start) + IndexToString(a.Mid) + IndexToString(a.End)
}

// parseActionCells splits an action string of the form
// <cell>[<cell>]<cell> into its two or three component cell indices.
func parseActionCells(s string) (start, mid, end int, hasMid bool, err error) {
	switch len(s) {
	case 4:
		a, ok1 := StringToIndex(s[0:2])
		b, ok2 := StringToIndex(s[2:4])
		if !ok1 || !ok2 {
			return 0, 0, 0, false, &ParseError{Kind: InvalidAction, Value: s}
		}
		return a, 0, b, false, nil
	case 6:
		a, ok1 := StringToIndex(s[0:2])
		m, ok2 := StringToIndex(s[2:4])
		e, ok3 := StringToIndex(s[4:6])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false, &ParseError{Kind: InvalidAction, Value: s}
		}
		return a, m, e, true, nil
	default:
		return 0, 0, 0, false, &ParseError{Kind: InvalidAction, Value: s}
	}
}

// ParseAction parses a bare action string with no board context: a
// two-cell string is always a plain move (Mid = NullIndex) and a
// three-cell string always carries its mid literally. Use
// Board.ResolveAction when the start/end colour-sharing inference rule
// must apply (the UGI external boundary).
func ParseAction(s string) (Action, error) {
	start, mid, end, hasMid, err := parseActionCells(s)
	if err != nil {
		return Action{}, err
	}
	if !hasMid {
		return Action{Start: start, Mid: NullIndex, End: end}, nil
	}
	return Action{Start: start, Mid: mid, End: end}, nil
}

// ResolveAction parses an action string the way the UGI boundary must: if
// only two cells are given and the board shows start and end holding
// pieces of the same colour, mid is inferred as start (a stack-only
// action); if an explicit mid equals end, it is canonicalised to
// NullIndex.
func (b *Board) ResolveAction(s string) (Action, error) {
	start, mid, end, hasMid, err := parseActionCells(s)
	if err != nil {
		return Action{}, err
	}
	if !hasMid {
		startPiece := b.GetPiece(start)
		endPiece := b.GetPiece(end)
		if !IsEmpty(startPiece) && !IsEmpty(endPiece) && ColourOf(Top(startPiece)) == ColourOf(Top(endPiece)) {
			return Action{Start: start, Mid: start, End: end}, nil
		}
		return Action{Start: start, Mid: NullIndex, End: end}, nil
	}
	if mid == end {
		return Action{Start: start, Mid: NullIndex, End: end}, nil
	}
	return Action{Start: start, Mid: mid, End: end}, nil
}

// mustParseAction is a convenience for tests and internal constant actions;
// it panics on a malformed string.
func mustParseAction(s string) Action {
	a, err := ParseAction(s)
	if err != nil {
		panic(fmt.Sprintf("board: invalid action literal %q: %v", s, err))
	}
	return a
}
