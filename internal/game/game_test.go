package game

import (
	"testing"

	"github.com/tessera-project/pijersi/internal/board"
)

func TestNewIsNotOver(t *testing.T) {
	g := New()
	if g.IsOver() {
		t.Error("a fresh game should not be over")
	}
	if g.IsDraw() {
		t.Error("a fresh game should not be a draw")
	}
	if g.Side != board.White {
		t.Errorf("Side = %v, want White", g.Side)
	}
	if g.HalfMoves != 0 || g.FullMoves != 1 {
		t.Errorf("HalfMoves=%d FullMoves=%d, want 0,1", g.HalfMoves, g.FullMoves)
	}
}

func TestPlayRejectsIllegalAction(t *testing.T) {
	g := New()
	illegal := board.Action{Start: 0, Mid: board.NullIndex, End: 44}
	if err := g.Play(illegal); err == nil {
		t.Error("expected an error for an illegal action")
	}
}

func TestPlayAdvancesTurnAndCounters(t *testing.T) {
	g := New()
	actions := board.GenerateActions(g.Board, g.Side)
	if len(actions) == 0 {
		t.Fatal("starting position has no legal actions")
	}

	if err := g.Play(actions[0]); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.Side != board.Black {
		t.Errorf("Side = %v, want Black after white's move", g.Side)
	}
	if g.FullMoves != 1 {
		t.Errorf("FullMoves = %d, want 1 (increments after black moves)", g.FullMoves)
	}

	blackActions := board.GenerateActions(g.Board, g.Side)
	if len(blackActions) == 0 {
		t.Fatal("expected black to have a legal action")
	}
	if err := g.Play(blackActions[0]); err != nil {
		t.Fatalf("Play (black): %v", err)
	}
	if g.FullMoves != 2 {
		t.Errorf("FullMoves = %d, want 2 after black's move", g.FullMoves)
	}
}

func TestStateStringRoundTrip(t *testing.T) {
	g := New()
	s := g.StateString()

	g2 := New()
	// Mutate g2 so SetStateString is a genuine round trip, not a no-op.
	actions := board.GenerateActions(g2.Board, g2.Side)
	if len(actions) > 0 {
		_ = g2.Play(actions[0])
	}

	if err := g2.SetStateString(s); err != nil {
		t.Fatalf("SetStateString: %v", err)
	}
	if g2.StateString() != s {
		t.Errorf("round trip mismatch: got %q, want %q", g2.StateString(), s)
	}
}

func TestSetStateStringRejectsShortInput(t *testing.T) {
	g := New()
	if err := g.SetStateString("not enough fields"); err == nil {
		t.Error("expected an error for a state string missing fields")
	}
}

func TestIsStalemateFalseAtStart(t *testing.T) {
	g := New()
	if g.IsStalemate() {
		t.Error("the starting position should not be a stalemate")
	}
}
