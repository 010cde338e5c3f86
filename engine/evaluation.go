// Package engine implements the search half of the program: a static
// evaluator, Zobrist hashing, a bounded transposition table, and an
// iterative-deepening minimax with alpha-beta pruning driven by a
// wall-clock budget.
package engine

import "chessmind/board"

// ===== MATERIAL =====

// pieceValue indexes by board.PieceType, in centipawns.
var pieceValue = [7]int32{0, 100, 320, 330, 500, 900, 20000}

// ===== PIECE-SQUARE TABLES =====

/* Only pawns and knights carry square bonuses. The tables read top down
   the way a board is printed, eighth rank first. White indexes them by
   its own rank from the bottom and Black mirrors vertically, so the
   bonuses come out symmetric between the sides. */

var pawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

const (
	checkTerm      int32 = 50
	mobilityWeight int32 = 5
)

// Evaluate scores the position from White's point of view in centipawns:
// positive favors White. The score is the sum of material, the pawn and
// knight square tables, a flat term for a king standing in check, and
// the weighted difference in legal move counts. It is a pure function of
// the position and needs no search state, so tests can call it on its
// own.
func Evaluate(pos *board.Position) int32 {
	var score int32
	for sq := board.Square(0); sq < 64; sq++ {
		pc := pos.Get(sq)
		if pc == board.NoPiece {
			continue
		}
		v := pieceValue[pc.Type()] + squareBonus(pc, sq)
		if pc.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}

	if pos.InCheck(board.White) {
		score -= checkTerm
	}
	if pos.InCheck(board.Black) {
		score += checkTerm
	}

	mobility := len(pos.LegalMoves(board.White)) - len(pos.LegalMoves(board.Black))
	score += int32(mobility) * mobilityWeight

	return score
}

func squareBonus(pc board.Piece, sq board.Square) int32 {
	var table *[64]int32
	switch pc.Type() {
	case board.Pawn:
		table = &pawnTable
	case board.Knight:
		table = &knightTable
	default:
		return 0
	}
	f, r := sq.File(), sq.Rank()
	if pc.Color() == board.White {
		return table[r*8+f]
	}
	return table[(7-r)*8+f]
}
