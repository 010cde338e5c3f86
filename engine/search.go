package engine

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"chessmind/board"
)

// ===== SCORE CONSTANTS =====

const (
	// MateScore anchors checkmate: the remaining depth is added on top,
	// so a mate found nearer the root outweighs the same mate found
	// deeper, and the search steers toward the faster kill.
	MateScore int32 = 100000
	// DrawScore is what a stalemated side to move is worth.
	DrawScore int32 = 0
	// Infinity bounds the alpha-beta window. Wide enough to clear any
	// mate score, small enough that negating it cannot overflow.
	Infinity int32 = 1 << 30
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger attaches a logger for search tracing. The default swallows
// everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTableSize bounds the transposition table at n entries.
func WithTableSize(n int) Option {
	return func(e *Engine) { e.table = NewTransTable(n) }
}

// WithHasher injects a prebuilt hasher, letting several engines share
// one key table.
func WithHasher(h *Hasher) Option {
	return func(e *Engine) { e.hasher = h }
}

// Engine owns everything a search needs: the Zobrist tables, the
// transposition table, a logger, and the stats of the last call. One
// Engine runs one search at a time; give concurrent searches an Engine
// each, or the shared table will race.
type Engine struct {
	hasher *Hasher
	table  *TransTable
	log    zerolog.Logger
	budget Budget
	stats  SearchStats
}

// NewEngine builds an engine with default table size and a silent
// logger, then applies the options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		hasher: NewHasher(),
		table:  NewTransTable(0),
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// FindBestMove searches the position for side under the given budget and
// returns the chosen move. ok is false when side has no legal move at
// all; the caller tells checkmate from stalemate with pos.InCheck(side).
// A returned move is always legal for side in pos.
//
// The deepening loop runs depth 1, 2, ... up to the budget ceiling and
// keeps the move of the deepest iteration that finished. An iteration
// cut short by the clock never overrides a finished one; its move is
// used only when the clock was so tight that not even depth 1 finished.
func (e *Engine) FindBestMove(pos *board.Position, side board.Color, budget Budget) (board.Move, bool) {
	budget.begin()
	e.budget = budget
	e.stats = SearchStats{}
	if e.table.ResetIfFull() {
		e.stats.TableCleared = true
		e.log.Debug().Int("max_entries", e.table.MaxEntries()).Msg("transposition table cleared")
	}

	e.log.Debug().
		Str("position", pos.FEN(side)).
		Str("side", side.String()).
		Int("max_depth", budget.MaxDepth()).
		Dur("limit", budget.TimeLimit()).
		Msg("search started")

	var (
		best      board.Move
		bestScore int32
		haveBest  bool
	)
	for depth := 1; depth <= budget.MaxDepth(); depth++ {
		// Depth 1 always runs even on an expired clock: rootSearch scores
		// its first move unconditionally, so one legal move is always found.
		if depth > 1 && e.budget.Expired() {
			break
		}
		iterStart := time.Now()
		mv, score, any, completed := e.rootSearch(pos, side, depth)
		if !any {
			e.log.Debug().Str("side", side.String()).Bool("in_check", pos.InCheck(side)).Msg("no legal moves")
			return board.Move{}, false
		}
		e.stats.DepthDurations = append(e.stats.DepthDurations, time.Since(iterStart))

		if !completed {
			if !haveBest {
				best, bestScore, haveBest = mv, score, true
				e.stats.Score = score
			}
			break
		}

		best, bestScore, haveBest = mv, score, true
		e.stats.Depth, e.stats.Score = depth, score
		e.log.Debug().
			Int("depth", depth).
			Int32("score", score).
			Str("move", mv.String()).
			Uint64("nodes", e.stats.Nodes).
			Dur("elapsed", e.budget.Elapsed()).
			Msg("depth completed")

		if e.budget.halfSpent() {
			break
		}
	}

	e.stats.Elapsed = e.budget.Elapsed()
	e.log.Info().
		Str("move", best.String()).
		Int32("score", bestScore).
		Int("depth", e.stats.Depth).
		Uint64("nodes", e.stats.Nodes).
		Uint64("tt_hits", e.stats.TTHits).
		Uint64("tt_stores", e.stats.TTStores).
		Dur("elapsed", e.stats.Elapsed).
		Msg("search finished")
	return best, true
}

// rootSearch scores every legal root move at the given depth, each with
// a fresh full window, and reports the best one for side. completed is
// false when the clock aborted the scan early; the first ordered move is
// always scored, so the partial result is usable as a last resort.
func (e *Engine) rootSearch(pos *board.Position, side board.Color, depth int) (best board.Move, bestScore int32, any, completed bool) {
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return board.Move{}, 0, false, true
	}
	hash := e.hasher.Hash(pos, side)
	ordered := e.orderMoves(pos, side, moves, hash)
	if ev := e.log.Debug(); ev.Enabled() {
		ev.Int("depth", depth).
			Strs("order", lo.Map(ordered, func(m board.Move, _ int) string { return m.String() })).
			Msg("root scan")
	}

	maximizing := side == board.White
	completed = true
	for i, mv := range ordered {
		if i > 0 && e.budget.Expired() {
			completed = false
			break
		}
		child := pos.Clone()
		child.ApplyMove(mv)
		score := e.minimax(&child, side.Opposite(), depth-1, -Infinity, Infinity)
		if i == 0 || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore = mv, score
		}
	}
	return best, bestScore, true, completed
}

// minimax is the recursive alpha-beta search. side is the side to move
// at this node; White maximizes and Black minimizes. Time running out
// degrades the node to a static evaluation instead of unwinding, so
// frames above still receive values and the window bookkeeping stays
// intact.
func (e *Engine) minimax(pos *board.Position, side board.Color, depth int, alpha, beta int32) int32 {
	if e.budget.Expired() {
		return Evaluate(pos)
	}
	e.stats.Nodes++

	if depth == 0 {
		return Evaluate(pos)
	}

	hash := e.hasher.Hash(pos, side)

	/* ===== TRANSPOSITION TABLE LOOKUP ===== */
	if entry, ok := e.table.Lookup(hash); ok && entry.Depth >= depth {
		e.stats.TTHits++
		switch entry.Flag {
		case ExactFlag:
			return entry.Score
		case LowerFlag:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case UpperFlag:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.Score
		}
	}

	maximizing := side == board.White
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		if pos.InCheck(side) {
			if maximizing {
				return -(MateScore + int32(depth))
			}
			return MateScore + int32(depth)
		}
		return DrawScore
	}

	ordered := e.orderMoves(pos, side, moves, hash)

	originalAlpha := alpha
	best := -Infinity
	if !maximizing {
		best = Infinity
	}
	var bestMove board.Move

	for _, mv := range ordered {
		child := pos.Clone()
		child.ApplyMove(mv)
		score := e.minimax(&child, side.Opposite(), depth-1, alpha, beta)

		if maximizing {
			if score > best {
				best, bestMove = score, mv
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < best {
				best, bestMove = score, mv
			}
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}

	/* ===== TRANSPOSITION TABLE STORE ===== */
	flag := ExactFlag
	switch {
	case best <= originalAlpha:
		flag = UpperFlag
	case best >= beta:
		flag = LowerFlag
	}
	e.table.Store(hash, TTEntry{
		Depth:   depth,
		Score:   best,
		Best:    bestMove,
		HasBest: true,
		Flag:    flag,
	})
	e.stats.TTStores++

	return best
}
