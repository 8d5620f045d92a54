package engine

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tessera-project/pijersi/internal/board"
)

// maxRootWorkers caps how many root moves are evaluated concurrently. The
// reference engine hands every root move to a work-stealing pool (rayon);
// here errgroup.SetLimit bounds the fan-out at this many goroutines.
const maxRootWorkers = 8

// Result is the outcome of a finished (or time-cut) search.
type Result struct {
	Action board.Action
	Score  int64
	Depth  int
}

// deadlineExceeded reports whether the optional deadline has passed.
func deadlineExceeded(deadline *time.Time) bool {
	return deadline != nil && time.Now().After(*deadline)
}

// Search runs a single fixed-depth search and returns the best root action.
// Depth 0 or an empty root action list reports ok=false. Root moves are
// evaluated concurrently: the first move in generator order gets the full
// window, every other move is probed with a null window first and only
// re-searched with the full window if it fails high — the same scheme the
// reference engine's rayon-parallel root search uses, adapted to
// errgroup+atomic alpha since Go has no built-in parallel iterator.
func Search(b *board.Board, side board.Colour, depth int, tt *Table, deadline *time.Time) (Result, bool) {
	if depth <= 0 || deadlineExceeded(deadline) {
		return Result{}, false
	}

	actions := board.GenerateActions(b, side)
	if len(actions) == 0 {
		return Result{}, false
	}

	if depth == 1 {
		return searchLeafRoot(b, side, actions), true
	}

	alpha := &atomic.Int64{}
	alpha.Store(-board.BaseBeta)
	beta := board.BaseBeta
	var cut atomic.Bool

	scores := make([]int64, len(actions))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(maxRootWorkers)

	for k, a := range actions {
		k, a := k, a
		g.Go(func() error {
			if ctx.Err() != nil || cut.Load() {
				scores[k] = board.MinScore
				return nil
			}
			child := b.Clone()
			child.PlayAction(a.Start, a.Mid, a.End)

			var eval int64
			if k == 0 {
				eval = -negamax(child, opponent(side), depth-1, -beta, -alpha.Load(), tt, deadline)
			} else {
				a0 := alpha.Load()
				nullWindow := -negamax(child, opponent(side), depth-1, -a0-1, -a0, tt, deadline)
				if a0 < nullWindow && nullWindow < beta {
					eval = -negamax(child, opponent(side), depth-1, -beta, -a0, tt, deadline)
				} else {
					eval = nullWindow
				}
			}

			for {
				cur := alpha.Load()
				if eval <= cur || alpha.CompareAndSwap(cur, eval) {
					break
				}
			}
			if alpha.Load() > beta {
				cut.Store(true)
			}
			scores[k] = eval
			return nil
		})
	}
	_ = g.Wait()

	if deadlineExceeded(deadline) {
		return Result{}, false
	}

	bestIdx, bestScore := 0, board.MinScore
	for i, s := range scores {
		if s >= bestScore {
			bestIdx, bestScore = i, s
		}
	}
	return Result{Action: actions[bestIdx], Score: bestScore, Depth: depth}, true
}

// searchLeafRoot handles depth==1 at the root with the lightweight
// terminal evaluator (no further recursion needed: each child is a leaf).
func searchLeafRoot(b *board.Board, side board.Colour, actions []board.Action) Result {
	detail := board.DetailEval(b)
	bestIdx, bestScore := 0, board.MinScore
	for i, a := range actions {
		score := board.EvaluateActionTerminal(b, side, a, detail)
		if score >= bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return Result{Action: actions[bestIdx], Score: bestScore, Depth: 1}
}

func opponent(side board.Colour) board.Colour {
	if side == board.White {
		return board.Black
	}
	return board.White
}

// negamax is the recursive alpha-beta search with transposition table
// probing, matching the sign convention of evaluate_action in the
// reference engine: the score returned is always from the perspective of
// the side passed in as `side`.
func negamax(b *board.Board, side board.Colour, depth int, alpha, beta int64, tt *Table, deadline *time.Time) int64 {
	if deadlineExceeded(deadline) {
		return 0
	}

	hash := b.Hash(side)
	origAlpha := alpha

	if tt != nil {
		if ttDepth, ttAction, ttScore, ttType, ok := tt.Read(hash); ok && ttDepth >= depth {
			switch ttType {
			case NodePV:
				return ttScore
			case NodeCut:
				if ttScore > alpha {
					alpha = ttScore
				}
			case NodeAll:
				if ttScore < beta {
					beta = ttScore
				}
			}
			if alpha >= beta {
				return ttScore
			}
			_ = ttAction
		}
	}

	actions := board.GenerateActions(b, side)
	if len(actions) == 0 {
		return board.MinScore
	}

	if depth == 0 {
		return signedEval(b, side)
	}

	if depth == 1 {
		detail := board.DetailEval(b)
		best := board.MinScore
		var bestAction board.Action
		for _, a := range actions {
			score := board.EvaluateActionTerminal(b, side, a, detail)
			if score > best {
				best, bestAction = score, a
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
		storeResult(tt, hash, depth, bestAction, best, origAlpha, beta)
		return best
	}

	best := board.MinScore
	var bestAction board.Action
	for k, a := range actions {
		child := b.Clone()
		child.PlayAction(a.Start, a.Mid, a.End)

		var eval int64
		if k == 0 {
			eval = -negamax(child, opponent(side), depth-1, -beta, -alpha, tt, deadline)
		} else {
			nullWindow := -negamax(child, opponent(side), depth-1, -alpha-1, -alpha, tt, deadline)
			if alpha < nullWindow && nullWindow < beta {
				eval = -negamax(child, opponent(side), depth-1, -beta, -alpha, tt, deadline)
			} else {
				eval = nullWindow
			}
		}

		if eval > best {
			best, bestAction = eval, a
		}
		if eval > alpha {
			alpha = eval
		}
		if alpha >= beta {
			break
		}

		if deadlineExceeded(deadline) {
			break
		}
	}

	storeResult(tt, hash, depth, bestAction, best, origAlpha, beta)
	return best
}

func storeResult(tt *Table, hash uint64, depth int, action board.Action, score, origAlpha, beta int64) {
	if tt == nil {
		return
	}
	nt := NodePV
	switch {
	case score <= origAlpha:
		nt = NodeAll
	case score >= beta:
		nt = NodeCut
	}
	tt.Insert(hash, depth, action, score, nt)
}

// signedEval returns board.Eval from side's perspective (white positive,
// black negative in Eval's own convention, so it is negated for black).
func signedEval(b *board.Board, side board.Colour) int64 {
	score := board.Eval(b)
	if side == board.Black {
		return -score
	}
	return score
}

// SearchIterative runs Search at increasing depths up to maxDepth, honoring
// an optional deadline, and reports each completed depth's result via
// onInfo (may be nil). It returns the deepest completed result.
func SearchIterative(b *board.Board, side board.Colour, maxDepth int, deadline *time.Time, tt *Table, onInfo func(depth int, result Result, elapsed time.Duration)) (Result, bool) {
	var best Result
	found := false
	for depth := 1; depth <= maxDepth; depth++ {
		if deadlineExceeded(deadline) {
			break
		}
		start := time.Now()
		result, ok := Search(b, side, depth, tt, deadline)
		if !ok {
			break
		}
		best, found = result, true
		if onInfo != nil {
			onInfo(depth, result, time.Since(start))
		}
	}
	return best, found
}
