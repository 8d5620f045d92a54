// Package game implements the Game collaborator: a board plus the
// bookkeeping (side to move, half-move and full-move counters) needed to
// play a full game and detect its end.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tessera-project/pijersi/internal/board"
)

// MaxHalfMoves is the ply count without a capture after which the game is
// a draw.
const MaxHalfMoves = 20

// Game tracks a board alongside the state needed to play and terminate a
// full game: whose turn it is, and the two move counters used for the
// draw rule and for PSN's external display.
type Game struct {
	Board          *board.Board
	Side           board.Colour
	HalfMoves      uint64
	FullMoves      uint64
	lastPieceCount int
}

// New returns a game set to the starting position, white to move.
func New() *Game {
	g := &Game{}
	g.Init()
	return g
}

// Init resets the game to the starting position.
func (g *Game) Init() {
	g.Board = board.NewBoard()
	g.Side = board.White
	g.HalfMoves = 0
	g.FullMoves = 1
	g.lastPieceCount = g.Board.CountPieces()
}

// Play applies action if it is legal for the side to move, advancing the
// turn and both move counters; the half-move counter resets on any action
// that changes the piece count (a capture) and otherwise increments.
func (g *Game) Play(action board.Action) error {
	if !board.IsActionLegal(g.Board, g.Side, action) {
		return &board.RulesError{Action: action}
	}
	g.Board.PlayAction(action.Start, action.Mid, action.End)

	if g.Side == board.Black {
		g.FullMoves++
	}
	g.Side = opponent(g.Side)

	count := g.Board.CountPieces()
	if count == g.lastPieceCount {
		g.HalfMoves++
	} else {
		g.lastPieceCount = count
		g.HalfMoves = 0
	}
	return nil
}

// PlayFromString parses action under the current board's context (see
// Board.ResolveAction) and plays it.
func (g *Game) PlayFromString(s string) error {
	action, err := g.Board.ResolveAction(s)
	if err != nil {
		return err
	}
	return g.Play(action)
}

func opponent(side board.Colour) board.Colour {
	if side == board.White {
		return board.Black
	}
	return board.White
}

// IsStalemate reports whether the side to move has no legal action.
func (g *Game) IsStalemate() bool {
	return len(board.GenerateActions(g.Board, g.Side)) == 0
}

// IsOver reports whether the game has ended: a side reached its win row,
// or the side to move has no legal action (stalemate).
func (g *Game) IsOver() bool {
	return g.Board.IsWin() || g.IsStalemate()
}

// IsDraw reports whether the 20-ply no-capture cap has been reached.
func (g *Game) IsDraw() bool {
	return g.HalfMoves >= MaxHalfMoves
}

// Winner returns the winning side, if IsWin is true.
func (g *Game) Winner() (board.Colour, bool) {
	return g.Board.GetWinner()
}

// StateString renders the game's Pijersi Standard Notation: position,
// side to move, half-moves, full-moves, space-separated.
func (g *Game) StateString() string {
	return fmt.Sprintf("%s %d %d", board.ToPositionString(g.Board, g.Side), g.HalfMoves, g.FullMoves)
}

// SetStateString parses a PSN string (as produced by StateString) and sets
// the game's board and counters from it.
func (g *Game) SetStateString(s string) error {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return &board.ParseError{Kind: board.InvalidPSN, Value: s}
	}
	posFields := strings.Join(fields[:2], " ")
	b, side, err := board.ParsePositionString(posFields)
	if err != nil {
		return err
	}
	half, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return &board.ParseError{Kind: board.InvalidInt, Value: fields[2]}
	}
	full, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return &board.ParseError{Kind: board.InvalidInt, Value: fields[3]}
	}

	g.Board = b
	g.Side = side
	g.HalfMoves = half
	g.FullMoves = full
	g.lastPieceCount = g.Board.CountPieces()
	return nil
}
