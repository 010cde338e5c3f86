// Package board implements the chess position model: piece placement,
// move generation, move application and the check rules, with a value
// type Position that copies cheaply so searches can clone per move.
package board

// PieceType identifies a kind of chessman, independent of who owns it.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Color is the side a piece belongs to, or the side to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Piece packs a PieceType and a Color into one byte:
// the low three bits hold the type, bit 3 marks Black.
type Piece uint8

const blackBit Piece = 8

const NoPiece Piece = 0

// MakePiece combines a side and a type into a concrete Piece.
// MakePiece(side, NoPieceType) is NoPiece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	p := Piece(pt)
	if c == Black {
		p |= blackBit
	}
	return p
}

// Type returns the colorless kind of the piece.
func (p Piece) Type() PieceType { return PieceType(p &^ blackBit) }

// Color returns the owning side. NoPiece reports White.
func (p Piece) Color() Color {
	if p&blackBit != 0 {
		return Black
	}
	return White
}

// Square indexes the board 0..63 with a1 = 0, b1 = 1, ..., h8 = 63.
type Square int

// NoSquare marks the absence of a square (no en-passant target, no king).
const NoSquare Square = -1

// SquareAt builds a square from file and rank, both 0..7.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file 0..7, where 0 is the a-file.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank 0..7, where 0 is White's back rank.
func (s Square) Rank() int { return int(s) / 8 }

// String renders the square in algebraic form ("e4"). NoSquare is "-".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// Position is the full board state. It is a plain value: assigning or
// passing one copies it, which is what the search relies on when it
// clones before applying a move. The zero value is not a usable board
// because the caches need their no-square sentinel; start from Empty,
// NewPosition or ParseFEN instead.
type Position struct {
	squares [64]Piece

	// King squares are cached per side so check detection does not scan.
	// Invariant: after any mutation the cache equals the real location.
	kingSq [2]Square

	// Castling bookkeeping. A side may still castle on a wing while its
	// king and that wing's rook have both never moved; CanCastle also
	// wants the rook still standing on its corner.
	kingMoved  [2]bool
	rookAMoved [2]bool // queen-side rook
	rookHMoved [2]bool // king-side rook

	// En-passant target square set by the last double pawn push, or
	// NoSquare. Any following move clears it.
	epTarget Square
}

// Empty returns a board with no pieces and no castling history.
func Empty() Position {
	return Position{
		kingSq:   [2]Square{NoSquare, NoSquare},
		epTarget: NoSquare,
	}
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	p := Empty()
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		p.Set(SquareAt(f, 0), MakePiece(White, back[f]))
		p.Set(SquareAt(f, 1), MakePiece(White, Pawn))
		p.Set(SquareAt(f, 6), MakePiece(Black, Pawn))
		p.Set(SquareAt(f, 7), MakePiece(Black, back[f]))
	}
	return p
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() Position { return *p }

// Get returns the piece on sq, NoPiece when empty.
func (p *Position) Get(sq Square) Piece { return p.squares[sq] }

// Set places pc on sq, replacing whatever was there, and keeps the king
// cache in sync. It does not touch the castling flags; FEN parsing and
// tests drive those directly.
func (p *Position) Set(sq Square, pc Piece) {
	old := p.squares[sq]
	if old.Type() == King && p.kingSq[old.Color()] == sq && pc != old {
		p.kingSq[old.Color()] = NoSquare
	}
	p.squares[sq] = pc
	if pc.Type() == King {
		p.kingSq[pc.Color()] = sq
	}
}

// KingSquare returns the cached king location for side, NoSquare if the
// side has no king on the board.
func (p *Position) KingSquare(side Color) Square { return p.kingSq[side] }

// EnPassantTarget returns the current en-passant target or NoSquare.
func (p *Position) EnPassantTarget() Square { return p.epTarget }

// CanCastle reports whether side still has the castling right on the
// given wing: its king and that wing's rook have never moved and the
// rook still stands on its home corner. A rook captured in place
// forfeits the right even though it never moved. CanCastle says
// nothing about the squares in between being free right now.
func (p *Position) CanCastle(side Color, kingSide bool) bool {
	if p.kingMoved[side] {
		return false
	}
	homeRank, rookFile := 0, 7
	if side == Black {
		homeRank = 7
	}
	moved := p.rookHMoved[side]
	if !kingSide {
		rookFile, moved = 0, p.rookAMoved[side]
	}
	if moved {
		return false
	}
	return p.squares[SquareAt(rookFile, homeRank)] == MakePiece(side, Rook)
}

// setCastlingRights rebuilds the moved flags from four explicit rights,
// the way a FEN castling field describes them.
func (p *Position) setCastlingRights(wk, wq, bk, bq bool) {
	p.kingMoved[White] = !wk && !wq
	p.kingMoved[Black] = !bk && !bq
	p.rookHMoved[White] = !wk
	p.rookAMoved[White] = !wq
	p.rookHMoved[Black] = !bk
	p.rookAMoved[Black] = !bq
}

// GameStatus summarizes whether a side has any continuation.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// HasLegalMoves reports whether side has at least one legal move.
func (p *Position) HasLegalMoves(side Color) bool {
	return len(p.LegalMoves(side)) > 0
}

// InCheckmate reports whether side is in check with no legal reply.
func (p *Position) InCheckmate(side Color) bool {
	return p.InCheck(side) && !p.HasLegalMoves(side)
}

// InStalemate reports whether side has no legal move while not in check.
func (p *Position) InStalemate(side Color) bool {
	return !p.InCheck(side) && !p.HasLegalMoves(side)
}

// Status resolves the game state for the side about to move.
func (p *Position) Status(side Color) GameStatus {
	if p.HasLegalMoves(side) {
		return Ongoing
	}
	if p.InCheck(side) {
		return Checkmate
	}
	return Stalemate
}
