// Package ugi implements the Universal Game Interface: a line-oriented
// stdin/stdout protocol modelled on UCI, adapted to Pijersi's actions and
// query set.
package ugi

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tessera-project/pijersi/internal/board"
	"github.com/tessera-project/pijersi/internal/book"
	"github.com/tessera-project/pijersi/internal/engine"
	"github.com/tessera-project/pijersi/internal/game"
	"github.com/tessera-project/pijersi/internal/storage"
)

// EngineName and AuthorName identify this engine in the "ugi" handshake.
const (
	EngineName = "Tessera"
	AuthorName = "Tessera Project"
)

// Options mirrors the reference engine's GameOptions: runtime toggles for
// the opening book, transposition table, and info-line verbosity.
type Options struct {
	UseBook    bool
	UseTable   bool
	Verbose    bool
	TableBits  int
	SearchBook *book.Book
	GameStore  *storage.Store
}

// DefaultOptions returns the engine's default runtime configuration.
func DefaultOptions() Options {
	return Options{UseBook: true, UseTable: true, Verbose: true, TableBits: 20}
}

// Engine is the UGI session state: the current game and its runtime
// options, held across commands the way the reference UgiEngine holds a
// single mutable Board.
type Engine struct {
	game      *game.Game
	opts      Options
	tt        *engine.Table
	out       io.Writer
	quit      bool
	startFen  string
	moveLog   []string
	gameStart time.Time
	recorded  bool
}

// New returns an engine set to the starting position.
func New(opts Options, out io.Writer) *Engine {
	e := &Engine{game: game.New(), opts: opts, out: out}
	if opts.UseTable {
		e.tt = engine.NewTable(opts.TableBits)
	}
	e.resetGameLog()
	return e
}

// resetGameLog starts a fresh record for a new game, matching whatever
// position the Game collaborator currently holds.
func (e *Engine) resetGameLog() {
	e.startFen = board.ToPositionString(e.game.Board, e.game.Side)
	e.moveLog = nil
	e.gameStart = time.Now()
	e.recorded = false
}

// recordIfOver persists the current game to the configured store exactly
// once, the first time it is observed to have ended.
func (e *Engine) recordIfOver() {
	if e.opts.GameStore == nil || e.recorded {
		return
	}
	if !e.game.Board.IsWin() && !e.game.IsStalemate() && !e.game.IsDraw() {
		return
	}

	result := storage.ResultNone
	switch {
	case e.game.Board.IsWin():
		if winner, _ := e.game.Winner(); winner == board.White {
			result = storage.ResultP1Win
		} else {
			result = storage.ResultP2Win
		}
	case e.game.IsDraw() || e.game.IsStalemate():
		result = storage.ResultDraw
	}

	rec := storage.Record{
		StartingFen: e.startFen,
		Moves:       append([]string(nil), e.moveLog...),
		Result:      result,
		Duration:    time.Since(e.gameStart),
		PlayedAt:    time.Now(),
	}
	if _, err := e.opts.GameStore.SaveGame(rec); err != nil {
		e.printf("info error %q\n", "could not save game record: "+err.Error())
	}
	e.recorded = true
}

func (e *Engine) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}

// Run reads commands from r, one per line, until "quit" or EOF.
func (e *Engine) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && !e.quit {
		e.Dispatch(scanner.Text())
	}
}

// Dispatch parses and executes a single command line.
func (e *Engine) Dispatch(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "ugi":
		e.cmdUgi()
	case "isready":
		e.printf("readyok\n")
	case "uginewgame":
		e.game.Init()
		e.resetGameLog()
	case "quit":
		e.quit = true
	case "go":
		e.cmdGo(fields[1:])
	case "position":
		e.cmdPosition(fields[1:])
	case "query":
		e.cmdQuery(fields[1:])
	default:
		e.printf("info error %q\n", "unknown command: "+fields[0])
	}
}

func (e *Engine) cmdUgi() {
	e.printf("id name %s\n", EngineName)
	e.printf("id author %s\n", AuthorName)
	e.printf("ugiok\n")
}

func (e *Engine) cmdGo(args []string) {
	if len(args) == 0 {
		e.printf("info error %q\n", "go requires a subcommand")
		return
	}
	switch args[0] {
	case "depth":
		if len(args) < 2 {
			e.printf("info error %q\n", "go depth requires a depth")
			return
		}
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			e.printf("info error %q\n", "invalid depth: "+args[1])
			return
		}
		e.search(depth, nil)
	case "movetime":
		if len(args) < 2 {
			e.printf("info error %q\n", "go movetime requires milliseconds")
			return
		}
		ms, err := strconv.Atoi(args[1])
		if err != nil {
			e.printf("info error %q\n", "invalid movetime: "+args[1])
			return
		}
		deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
		e.search(64, &deadline)
	case "perft":
		if len(args) < 2 {
			e.printf("info error %q\n", "go perft requires a depth")
			return
		}
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			e.printf("info error %q\n", "invalid depth: "+args[1])
			return
		}
		start := time.Now()
		count := board.Perft(e.game.Board, e.game.Side, depth)
		elapsed := float64(time.Since(start).Microseconds()) / 1000
		e.printf("info perft depth %d result %d time %g\n", depth, count, elapsed)
	default:
		e.printf("info error %q\n", "unknown go subcommand: "+args[0])
	}
}

func (e *Engine) search(maxDepth int, deadline *time.Time) {
	if e.opts.UseBook && e.opts.SearchBook != nil {
		if rec, ok := e.opts.SearchBook.Lookup(e.game.Board, e.game.Side); ok {
			if e.opts.Verbose {
				e.printf("info book score %d pv %s\n", rec.Score, rec.Action.String())
			}
			e.printf("bestmove %s\n", rec.Action.String())
			return
		}
	}

	var tt *engine.Table
	if e.opts.UseTable {
		tt = e.tt
	}

	onInfo := func(depth int, result engine.Result, elapsed time.Duration) {
		if !e.opts.Verbose {
			return
		}
		ms := float64(elapsed.Microseconds()) / 1000
		e.printf("info depth %d time %g score %d pv %s\n", depth, ms, result.Score, result.Action.String())
	}

	result, ok := engine.SearchIterative(e.game.Board, e.game.Side, maxDepth, deadline, tt, onInfo)
	if !ok {
		e.printf("bestmove ------\n")
		return
	}
	e.printf("bestmove %s\n", result.Action.String())
}

func (e *Engine) cmdPosition(args []string) {
	if len(args) == 0 {
		e.printf("info error %q\n", "position requires a subcommand")
		return
	}
	switch args[0] {
	case "startpos":
		e.positionMoves(args[1:], func() error {
			e.game.Init()
			return nil
		})
	case "fen":
		if len(args) < 4 {
			e.printf("info error %q\n", "position fen requires fen, player, half-moves, full-moves")
			return
		}
		fen, player, halfStr, fullStr := args[1], args[2], args[3], ""
		rest := args[4:]
		if len(rest) == 0 {
			e.printf("info error %q\n", "position fen requires full-moves")
			return
		}
		fullStr, rest = rest[0], rest[1:]
		e.positionMoves(rest, func() error {
			return e.game.SetStateString(fmt.Sprintf("%s %s %s %s", fen, player, halfStr, fullStr))
		})
	default:
		e.printf("info error %q\n", "unknown position subcommand: "+args[0])
	}
}

// positionMoves applies setup (which resets the game) and then plays any
// trailing "moves ..." action list, matching the reference engine's
// startpos/fen argument shapes (an empty move list, or a literal "moves"
// token followed by one or more action strings).
func (e *Engine) positionMoves(args []string, setup func() error) {
	switch len(args) {
	case 0:
		if err := setup(); err != nil {
			e.printf("info error %q\n", err.Error())
			return
		}
		e.resetGameLog()
	case 1:
		e.printf("info error %q\n", "invalid argument "+args[0])
	default:
		if args[0] != "moves" {
			e.printf("info error %q\n", "invalid argument "+args[0])
			return
		}
		if err := setup(); err != nil {
			e.printf("info error %q\n", err.Error())
			return
		}
		e.resetGameLog()
		for _, actionStr := range args[1:] {
			if err := e.game.PlayFromString(actionStr); err != nil {
				e.printf("info error %q\n", err.Error())
				continue
			}
			e.moveLog = append(e.moveLog, actionStr)
		}
		e.recordIfOver()
	}
}

func (e *Engine) cmdQuery(args []string) {
	if len(args) == 0 {
		e.printf("info error %q\n", "query requires a subcommand")
		return
	}
	switch args[0] {
	case "gameover":
		e.printf("response %t\n", e.game.IsOver() || e.game.IsDraw())
	case "p1turn":
		e.printf("response %t\n", e.game.Side == board.White)
	case "result":
		switch {
		case e.game.Board.IsWin():
			winner, _ := e.game.Winner()
			if winner == board.White {
				e.printf("response p1win\n")
			} else {
				e.printf("response p2win\n")
			}
		case e.game.IsDraw() || e.game.IsStalemate():
			e.printf("response draw\n")
		default:
			e.printf("response none\n")
		}
	case "islegal":
		if len(args) < 2 {
			e.printf("response false\n")
			return
		}
		action, err := e.game.Board.ResolveAction(args[1])
		if err != nil {
			e.printf("response false\n")
			return
		}
		e.printf("response %t\n", board.IsActionLegal(e.game.Board, e.game.Side, action))
	case "fen":
		e.printf("%s\n", e.game.StateString())
	default:
		e.printf("info error %q\n", "unknown query subcommand: "+args[0])
	}
}
