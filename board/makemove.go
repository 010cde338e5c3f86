package board

// ApplyMove plays mv on the position, in place and atomically. The only
// validation is that the source square holds a piece; everything else
// trusts the caller to pass moves from the generator. Returns false and
// changes nothing when the source square is empty.
//
// Behavior knitted into the one call:
//   - the previous en-passant target is cleared before anything else
//   - a king move of two files is castling: the wing rook jumps to the
//     square the king crossed, and both moved flags are set
//   - a double pawn push records the skipped square as the new target
//   - a pawn stepping diagonally onto an empty square captures en
//     passant: the victim stands on the departure rank, arrival file
//   - a pawn reaching the last rank becomes mv.Promotion, Queen if none
//     was named
func (p *Position) ApplyMove(mv Move) bool {
	pc := p.squares[mv.From]
	if pc == NoPiece {
		return false
	}
	side := pc.Color()
	p.epTarget = NoSquare

	switch pc.Type() {
	case King:
		fileDiff := mv.To.File() - mv.From.File()
		if fileDiff == 2 || fileDiff == -2 {
			rank := mv.From.Rank()
			if fileDiff > 0 {
				p.squares[SquareAt(5, rank)] = p.squares[SquareAt(7, rank)]
				p.squares[SquareAt(7, rank)] = NoPiece
				p.rookHMoved[side] = true
			} else {
				p.squares[SquareAt(3, rank)] = p.squares[SquareAt(0, rank)]
				p.squares[SquareAt(0, rank)] = NoPiece
				p.rookAMoved[side] = true
			}
		}
		p.kingMoved[side] = true
		p.kingSq[side] = mv.To

	case Pawn:
		rankDiff := mv.To.Rank() - mv.From.Rank()
		if rankDiff == 2 || rankDiff == -2 {
			p.epTarget = SquareAt(mv.From.File(), (mv.From.Rank()+mv.To.Rank())/2)
		} else if mv.To.File() != mv.From.File() && p.squares[mv.To] == NoPiece {
			p.squares[SquareAt(mv.To.File(), mv.From.Rank())] = NoPiece
		}

	case Rook:
		switch mv.From {
		case SquareAt(0, 0):
			if side == White {
				p.rookAMoved[White] = true
			}
		case SquareAt(7, 0):
			if side == White {
				p.rookHMoved[White] = true
			}
		case SquareAt(0, 7):
			if side == Black {
				p.rookAMoved[Black] = true
			}
		case SquareAt(7, 7):
			if side == Black {
				p.rookHMoved[Black] = true
			}
		}
	}

	p.squares[mv.To] = pc
	p.squares[mv.From] = NoPiece

	if pc.Type() == Pawn {
		lastRank := 7
		if side == Black {
			lastRank = 0
		}
		if mv.To.Rank() == lastRank {
			promo := mv.Promotion
			if promo == NoPieceType {
				promo = Queen
			}
			p.squares[mv.To] = MakePiece(side, promo)
		}
	}
	return true
}
