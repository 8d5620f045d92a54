package board

import "testing"

func TestCanMove1OntoEmpty(t *testing.T) {
	b := NewBoard()
	if !CanMove1(b, WhiteScissors, 20) {
		t.Error("expected a move onto an empty cell to be legal")
	}
}

func TestCanMove1RejectsSameColour(t *testing.T) {
	b := NewBoard()
	b.SetPiece(20, WhitePaper)
	if CanMove1(b, WhiteScissors, 20) {
		t.Error("expected a move onto an ally-occupied cell to be illegal")
	}
}

func TestCanMove1RequiresRPS(t *testing.T) {
	b := NewBoard()
	b.SetPiece(20, BlackRock)
	if CanMove1(b, WhiteScissors, 20) {
		t.Error("Scissors should not capture Rock")
	}
	if !CanMove1(b, WhitePaper, 20) {
		t.Error("Paper should capture Rock")
	}
}

func TestCanMove2LooseRPS(t *testing.T) {
	b := NewBoard()
	start, mid, end := 0, -1, -1
	for _, nb := range N2(start) {
		mid, end = nb.Mid, nb.End
		break
	}
	if end == -1 {
		t.Fatal("cell 0 has no 2-range neighbour")
	}
	b.RemovePiece(mid)

	b.SetPiece(end, BlackRock)
	if !CanMove2(b, WhiteScissors, start, end) {
		t.Error("a 2-range landing onto an enemy piece should not require the RPS relation")
	}

	b.RemovePiece(end)
	b.SetPiece(end, WhiteRock)
	if CanMove2(b, WhiteScissors, start, end) {
		t.Error("a 2-range landing onto an ally piece should still be illegal")
	}
}

func TestCanMove2RequiresEmptyMidpoint(t *testing.T) {
	b := NewBoard()
	var start, mid, end int
	found := false
	for _, nb := range N2(0) {
		start, mid, end = 0, nb.Mid, nb.End
		found = true
		break
	}
	if !found {
		t.Fatal("cell 0 has no 2-range neighbour")
	}

	b.SetPiece(mid, WhiteRock)
	if CanMove2(b, WhiteScissors, start, end) {
		t.Error("a 2-range move should be illegal when its midpoint is occupied")
	}
}

func TestCanStackOntoAlly(t *testing.T) {
	b := NewBoard()
	b.SetPiece(20, WhiteScissors)
	if !CanStack(b, WhiteRock, 20) {
		t.Error("expected Rock to be able to stack onto an ally single piece")
	}
}

func TestCanStackRejectsWiseOntoNonWise(t *testing.T) {
	b := NewBoard()
	b.SetPiece(20, WhiteScissors)
	if CanStack(b, WhiteWise, 20) {
		t.Error("Wise should only stack onto an ally Wise")
	}
}

func TestIsActionLegalAgreesWithGenerateActions(t *testing.T) {
	b := NewBoard()
	actions := GenerateActions(b, White)
	if len(actions) == 0 {
		t.Fatal("expected legal actions at the starting position")
	}
	if !IsActionLegal(b, White, actions[0]) {
		t.Error("a generated action should be reported legal")
	}

	bogus := Action{Start: actions[0].Start, Mid: NullIndex, End: actions[0].Start}
	if IsActionLegal(b, White, bogus) {
		t.Error("a no-op action should not be reported legal")
	}
}
