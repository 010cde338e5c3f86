package board

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree for side to the
// given depth. It is the standard cross-check for a move generator.
func Perft(p *Position, side Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves(side)
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, mv := range moves {
		child := p.Clone()
		child.ApplyMove(mv)
		total += Perft(&child, side.Opposite(), depth-1)
	}
	return total
}

// DivideEntry pairs a root move with the node count of its subtree.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide returns per-root-move perft counts in generation order, the
// usual way to bisect a generator disagreement down to one move.
func Divide(p *Position, side Color, depth int) []DivideEntry {
	moves := p.LegalMoves(side)
	out := make([]DivideEntry, 0, len(moves))
	for _, mv := range moves {
		child := p.Clone()
		child.ApplyMove(mv)
		out = append(out, DivideEntry{Move: mv, Nodes: Perft(&child, side.Opposite(), depth-1)})
	}
	return out
}

// PerftParallel is Perft with the root moves spread over a worker group.
// Every worker owns its clone outright, so there is nothing to lock.
func PerftParallel(p *Position, side Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves(side)
	if depth == 1 {
		return uint64(len(moves))
	}
	counts := make([]uint64, len(moves))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			child := p.Clone()
			child.ApplyMove(mv)
			counts[i] = Perft(&child, side.Opposite(), depth-1)
			return nil
		})
	}
	// Workers only count, they cannot fail.
	_ = g.Wait()

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total
}
