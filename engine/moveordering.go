package engine

import (
	"chessmind/board"

	"golang.org/x/exp/slices"
)

/* Ordering weights. The hash move from the table leads, then captures
   sorted most-valuable-victim first and least-valuable-attacker second,
   then checks, castling, and a nudge toward the middle of the board.
   Ordering decides how early alpha-beta prunes and nothing else; a
   shuffled move list must still search to the same value. */
const (
	hashMoveBonus  int32 = 10000
	checkBonus     int32 = 500
	castleBonus    int32 = 300
	innerRingBonus int32 = 50
	outerRingBonus int32 = 20
)

type scoredMove struct {
	mv    board.Move
	score int32
}

// orderMoves sorts the candidates best first for the node whose hash is
// given. The sort is stable so equal scores keep generation order and
// searches stay reproducible.
func (e *Engine) orderMoves(pos *board.Position, side board.Color, moves []board.Move, hash uint64) []board.Move {
	if len(moves) < 2 {
		return moves
	}
	var hashMove board.Move
	var haveHashMove bool
	if entry, ok := e.table.Lookup(hash); ok && entry.HasBest {
		hashMove, haveHashMove = entry.Best, true
	}

	scored := make([]scoredMove, len(moves))
	for i, mv := range moves {
		s := e.scoreMove(pos, side, mv)
		if haveHashMove && mv == hashMove {
			s += hashMoveBonus
		}
		scored[i] = scoredMove{mv: mv, score: s}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) bool {
		return a.score > b.score
	})

	ordered := make([]board.Move, len(moves))
	for i, s := range scored {
		ordered[i] = s.mv
	}
	return ordered
}

func (e *Engine) scoreMove(pos *board.Position, side board.Color, mv board.Move) int32 {
	var s int32

	mover := pos.Get(mv.From)
	victim := pos.Get(mv.To)
	switch {
	case victim != board.NoPiece:
		s += 10*pieceValue[victim.Type()] - pieceValue[mover.Type()]
	case mover.Type() == board.Pawn && mv.To.File() != mv.From.File():
		// En passant: the victim is always a pawn.
		s += 10*pieceValue[board.Pawn] - pieceValue[board.Pawn]
	}

	if mover.Type() == board.King {
		if d := mv.To.File() - mv.From.File(); d == 2 || d == -2 {
			s += castleBonus
		}
	}

	child := pos.Clone()
	if child.ApplyMove(mv) && child.InCheck(side.Opposite()) {
		s += checkBonus
	}

	s += centerBonus(mv.To)
	return s
}

// centerBonus rewards moves landing on d4/e4/d5/e5 and, less, the ring
// of twelve squares around them.
func centerBonus(sq board.Square) int32 {
	f, r := sq.File(), sq.Rank()
	if (f == 3 || f == 4) && (r == 3 || r == 4) {
		return innerRingBonus
	}
	if f >= 2 && f <= 5 && r >= 2 && r <= 5 {
		return outerRingBonus
	}
	return 0
}
