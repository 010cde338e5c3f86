package engine

import (
	"math/rand"

	"chessmind/board"
)

// zobristSeed fixes the key tables so equal positions hash equal for the
// lifetime of the process. Nothing may depend on the hash surviving a
// restart.
const zobristSeed = 0x5EED

// Hasher holds the Zobrist key tables: one 64-bit key per piece, side
// and square combination, one per castling right, one per en-passant
// file, and one for Black to move. The tables are filled once at
// construction and never change afterwards.
type Hasher struct {
	piece  [2][7][64]uint64
	castle [2][2]uint64 // [side][wing], wing 0 = king side
	epFile [8]uint64
	black  uint64
}

// NewHasher builds the key tables from the fixed seed.
func NewHasher() *Hasher {
	rng := rand.New(rand.NewSource(zobristSeed))
	h := &Hasher{}
	for c := 0; c < 2; c++ {
		for pt := 1; pt < 7; pt++ {
			for sq := 0; sq < 64; sq++ {
				h.piece[c][pt][sq] = rng.Uint64()
			}
		}
	}
	for c := 0; c < 2; c++ {
		h.castle[c][0] = rng.Uint64()
		h.castle[c][1] = rng.Uint64()
	}
	for f := 0; f < 8; f++ {
		h.epFile[f] = rng.Uint64()
	}
	h.black = rng.Uint64()
	return h
}

// Hash keys the position together with the side to move. The key XORs
// one value per occupied square, one per castling right still available,
// the en-passant file when a target is set, and the side key when Black
// is to move. Collisions are the transposition table's problem, not the
// hasher's.
func (h *Hasher) Hash(pos *board.Position, sideToMove board.Color) uint64 {
	var key uint64
	for sq := board.Square(0); sq < 64; sq++ {
		pc := pos.Get(sq)
		if pc == board.NoPiece {
			continue
		}
		key ^= h.piece[pc.Color()][pc.Type()][sq]
	}
	for _, c := range [2]board.Color{board.White, board.Black} {
		if pos.CanCastle(c, true) {
			key ^= h.castle[c][0]
		}
		if pos.CanCastle(c, false) {
			key ^= h.castle[c][1]
		}
	}
	if ep := pos.EnPassantTarget(); ep != board.NoSquare {
		key ^= h.epFile[ep.File()]
	}
	if sideToMove == board.Black {
		key ^= h.black
	}
	return key
}
