package engine

import (
	"testing"
	"time"

	"github.com/tessera-project/pijersi/internal/board"
)

func TestSearchReturnsLegalMove(t *testing.T) {
	b := board.NewBoard()
	result, ok := Search(b, board.White, 2, nil, nil)
	if !ok {
		t.Fatal("Search returned ok=false for the starting position")
	}

	legal := false
	for _, a := range board.GenerateActions(b, board.White) {
		if a == result.Action {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("Search returned %s, not among the generated legal actions", result.Action.String())
	}
}

func TestSearchDepthZeroFails(t *testing.T) {
	b := board.NewBoard()
	if _, ok := Search(b, board.White, 0, nil, nil); ok {
		t.Error("Search at depth 0 should report ok=false")
	}
}

func TestSearchHonoursDeadline(t *testing.T) {
	b := board.NewBoard()
	past := time.Now().Add(-time.Second)
	if _, ok := Search(b, board.White, 4, nil, &past); ok {
		t.Error("Search should report ok=false once the deadline has already passed")
	}
}

func TestSearchIterativeReportsEachDepth(t *testing.T) {
	b := board.NewBoard()
	seen := 0
	result, ok := SearchIterative(b, board.White, 3, nil, nil, func(depth int, r Result, elapsed time.Duration) {
		seen++
		if r.Depth != depth {
			t.Errorf("onInfo depth %d but result.Depth=%d", depth, r.Depth)
		}
	})
	if !ok {
		t.Fatal("SearchIterative returned ok=false")
	}
	if seen != 3 {
		t.Errorf("expected onInfo called 3 times, got %d", seen)
	}
	if result.Depth != 3 {
		t.Errorf("expected final result at depth 3, got %d", result.Depth)
	}
}

func TestTableInsertAndRead(t *testing.T) {
	tt := NewTable(4)
	var action board.Action
	for _, a := range board.GenerateActions(board.NewBoard(), board.White) {
		action = a
		break
	}

	tt.Insert(0xABCD, 5, action, 100, NodePV)
	depth, got, score, nt, ok := tt.Read(0xABCD)
	if !ok {
		t.Fatal("expected to find the inserted entry")
	}
	if depth != 5 || got != action || score != 100 || nt != NodePV {
		t.Errorf("read back (%d,%v,%d,%v), want (5,%v,100,%v)", depth, got, score, nt, action, NodePV)
	}
}

func TestTableReplacementPrefersHigherDepth(t *testing.T) {
	tt := NewTable(4)
	var a1, a2 board.Action
	actions := board.GenerateActions(board.NewBoard(), board.White)
	a1, a2 = actions[0], actions[1]

	tt.Insert(1, 2, a1, 10, NodeAll)
	tt.Insert(1, 6, a2, 20, NodeAll)

	depth, got, score, _, ok := tt.Read(1)
	if !ok || depth != 6 || got != a2 || score != 20 {
		t.Errorf("expected the depth-6 entry to win, got depth=%d action=%v score=%d ok=%v", depth, got, score, ok)
	}
}

func TestTableClear(t *testing.T) {
	tt := NewTable(2)
	var action board.Action
	tt.Insert(7, 3, action, 0, NodeCut)
	tt.Clear()
	if _, _, _, _, ok := tt.Read(7); ok {
		t.Error("expected Clear to empty the table")
	}
}
