package board

// Move generation. PseudoMoves applies piece geometry and capture rules
// only and may leave the mover's own king in check; LegalMoves filters
// those out by playing each candidate on a clone. The clone-and-test
// filter is the legality oracle and dominates generation cost, so hot
// paths that do not need full legality should stay on PseudoMoves.

var (
	knightJumps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	orthoDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	promotionKinds = [4]PieceType{Queen, Rook, Bishop, Knight}
)

// LegalMoves returns every move for side that does not leave side's own
// king in check.
func (p *Position) LegalMoves(side Color) []Move {
	pseudo := p.PseudoMoves(side)
	legal := pseudo[:0]
	for _, mv := range pseudo {
		child := p.Clone()
		child.ApplyMove(mv)
		if !child.InCheck(side) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// PseudoMoves returns every move for side that follows piece movement
// geometry and capture rules, ignoring whether the king is left in check.
func (p *Position) PseudoMoves(side Color) []Move {
	moves := make([]Move, 0, 48)
	for sq := Square(0); sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece || pc.Color() != side {
			continue
		}
		switch pc.Type() {
		case Pawn:
			p.pawnMoves(sq, side, &moves)
		case Knight:
			p.stepMoves(sq, side, knightJumps[:], &moves)
		case Bishop:
			p.rayMoves(sq, side, diagDirs[:], &moves)
		case Rook:
			p.rayMoves(sq, side, orthoDirs[:], &moves)
		case Queen:
			p.rayMoves(sq, side, orthoDirs[:], &moves)
			p.rayMoves(sq, side, diagDirs[:], &moves)
		case King:
			p.stepMoves(sq, side, kingSteps[:], &moves)
			p.castleMoves(sq, side, &moves)
		}
	}
	return moves
}

func (p *Position) pawnMoves(from Square, side Color, out *[]Move) {
	dir, startRank := 1, 1
	if side == Black {
		dir, startRank = -1, 6
	}
	f, r := from.File(), from.Rank()

	if nr := r + dir; nr >= 0 && nr <= 7 {
		one := SquareAt(f, nr)
		if p.squares[one] == NoPiece {
			appendPawnMove(from, one, out)
			if r == startRank {
				two := SquareAt(f, r+2*dir)
				if p.squares[two] == NoPiece {
					*out = append(*out, Move{From: from, To: two})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+dir
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		to := SquareAt(nf, nr)
		target := p.squares[to]
		switch {
		case target != NoPiece && target.Color() != side:
			appendPawnMove(from, to, out)
		case target == NoPiece && to == p.epTarget:
			*out = append(*out, Move{From: from, To: to})
		}
	}
}

// appendPawnMove emits a pawn push or capture. A move landing on the last
// rank promotes and is expanded into four moves, one per promotion kind.
func appendPawnMove(from, to Square, out *[]Move) {
	if tr := to.Rank(); tr == 0 || tr == 7 {
		for _, kind := range promotionKinds {
			*out = append(*out, Move{From: from, To: to, Promotion: kind})
		}
		return
	}
	*out = append(*out, Move{From: from, To: to})
}

func (p *Position) stepMoves(from Square, side Color, steps [][2]int, out *[]Move) {
	f, r := from.File(), from.Rank()
	for _, d := range steps {
		nf, nr := f+d[0], r+d[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		to := SquareAt(nf, nr)
		if target := p.squares[to]; target == NoPiece || target.Color() != side {
			*out = append(*out, Move{From: from, To: to})
		}
	}
}

func (p *Position) rayMoves(from Square, side Color, dirs [][2]int, out *[]Move) {
	f, r := from.File(), from.Rank()
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
			to := SquareAt(nf, nr)
			target := p.squares[to]
			if target == NoPiece {
				*out = append(*out, Move{From: from, To: to})
				nf, nr = nf+d[0], nr+d[1]
				continue
			}
			if target.Color() != side {
				*out = append(*out, Move{From: from, To: to})
			}
			break
		}
	}
}

// castleMoves appends the castling moves available to side. The king
// must be unmoved on its home square and not in check; per wing the rook
// must be unmoved and present, every square strictly between king and
// rook must be empty, and the two squares the king crosses must not be
// attacked.
func (p *Position) castleMoves(from Square, side Color, out *[]Move) {
	if p.kingMoved[side] {
		return
	}
	homeRank := 0
	if side == Black {
		homeRank = 7
	}
	if from != SquareAt(4, homeRank) || p.InCheck(side) {
		return
	}
	if !p.rookHMoved[side] && p.castleWingOpen(side, homeRank, 7) {
		*out = append(*out, Move{From: from, To: SquareAt(6, homeRank)})
	}
	if !p.rookAMoved[side] && p.castleWingOpen(side, homeRank, 0) {
		*out = append(*out, Move{From: from, To: SquareAt(2, homeRank)})
	}
}

func (p *Position) castleWingOpen(side Color, rank, rookFile int) bool {
	if p.squares[SquareAt(rookFile, rank)] != MakePiece(side, Rook) {
		return false
	}
	lo, hi := 4, rookFile
	if rookFile < 4 {
		lo, hi = rookFile, 4
	}
	for f := lo + 1; f < hi; f++ {
		if p.squares[SquareAt(f, rank)] != NoPiece {
			return false
		}
	}
	step := 1
	if rookFile < 4 {
		step = -1
	}
	for i := 1; i <= 2; i++ {
		if !p.kingSafeOn(side, SquareAt(4, rank), SquareAt(4+i*step, rank)) {
			return false
		}
	}
	return true
}

// kingSafeOn tests whether side's king would stand safely on to, by
// relocating it there on a scratch copy. Moving the king can open the
// ray it was blocking, so testing the bare square is not enough.
func (p *Position) kingSafeOn(side Color, from, to Square) bool {
	c := p.Clone()
	c.Set(from, NoPiece)
	c.Set(to, MakePiece(side, King))
	return !c.InCheck(side)
}

// InCheck reports whether side's king is attacked by the other side.
// A board without a king for side is never in check.
func (p *Position) InCheck(side Color) bool {
	k := p.kingSq[side]
	if k == NoSquare {
		return false
	}
	return p.attacked(k, side.Opposite())
}

// attacked reports whether any piece of color by attacks sq. Four
// independent patterns: knight jumps, sliding rays that stop at the
// first occupied square, the two pawn capture squares, and the eight
// squares around an enemy king.
func (p *Position) attacked(sq Square, by Color) bool {
	f, r := sq.File(), sq.Rank()

	knight := MakePiece(by, Knight)
	for _, d := range knightJumps {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 && p.squares[SquareAt(nf, nr)] == knight {
			return true
		}
	}

	if p.rayHits(f, r, orthoDirs[:], by, Rook) || p.rayHits(f, r, diagDirs[:], by, Bishop) {
		return true
	}

	// Pawn attacks come from one rank toward the attacker's home.
	pr := r - 1
	if by == Black {
		pr = r + 1
	}
	if pr >= 0 && pr <= 7 {
		pawn := MakePiece(by, Pawn)
		for _, df := range [2]int{-1, 1} {
			if nf := f + df; nf >= 0 && nf <= 7 && p.squares[SquareAt(nf, pr)] == pawn {
				return true
			}
		}
	}

	king := MakePiece(by, King)
	for _, d := range kingSteps {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 && p.squares[SquareAt(nf, nr)] == king {
			return true
		}
	}
	return false
}

// rayHits walks each direction until a piece blocks it and reports
// whether that piece is an enemy slider consistent with the ray: the
// given type or a queen.
func (p *Position) rayHits(f, r int, dirs [][2]int, by Color, slider PieceType) bool {
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
			pc := p.squares[SquareAt(nf, nr)]
			if pc == NoPiece {
				nf, nr = nf+d[0], nr+d[1]
				continue
			}
			if pc.Color() == by && (pc.Type() == slider || pc.Type() == Queen) {
				return true
			}
			break
		}
	}
	return false
}
