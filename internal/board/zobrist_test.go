package board

import "testing"

func TestHashDependsOnSideToMove(t *testing.T) {
	b := NewBoard()
	if b.Hash(White) == b.Hash(Black) {
		t.Error("Hash should differ between White and Black to move for the same position")
	}
}

func TestHashIsDeterministic(t *testing.T) {
	b1 := NewBoard()
	b2 := NewBoard()
	if b1.Hash(White) != b2.Hash(White) {
		t.Error("two freshly initialized boards should hash identically")
	}
}

func TestHashChangesAfterMove(t *testing.T) {
	b := NewBoard()
	before := b.Hash(White)

	actions := GenerateActions(b, White)
	if len(actions) == 0 {
		t.Fatal("expected legal actions at the starting position")
	}
	a := actions[0]
	b.PlayAction(a.Start, a.Mid, a.End)

	if after := b.Hash(Black); after == before {
		t.Error("expected the hash to change after a move")
	}
}

func TestHashEmptyBoardIsZeroOnlyForWhite(t *testing.T) {
	b := &Board{}
	if b.Hash(White) != 0 {
		t.Error("an empty board with White to move should hash to 0 (no bits set, no player fold-in)")
	}
	if b.Hash(Black) == 0 {
		t.Error("an empty board with Black to move should fold in playerHash and not be 0")
	}
}
