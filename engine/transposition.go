package engine

import "chessmind/board"

// BoundFlag says how a cached score relates to the true value of the
// position it was stored for.
type BoundFlag int8

const (
	// ExactFlag marks a score searched with a full window.
	ExactFlag BoundFlag = iota
	// LowerFlag marks a score from a node that cut off: the truth is at
	// least this good for the maximizer.
	LowerFlag
	// UpperFlag marks a score no move managed to raise above alpha: the
	// truth is at most this.
	UpperFlag
)

func (f BoundFlag) String() string {
	switch f {
	case LowerFlag:
		return "lower"
	case UpperFlag:
		return "upper"
	default:
		return "exact"
	}
}

// TTEntry is one cached search result, keyed externally by the position
// hash.
type TTEntry struct {
	Depth   int        // remaining depth the score was searched to
	Score   int32      // centipawns, White positive
	Best    board.Move // best move found at the node, for ordering
	HasBest bool
	Flag    BoundFlag
}

// DefaultTableSize is the entry bound before the clear policy fires.
const DefaultTableSize = 100000

// TransTable is a bounded map from Zobrist key to TTEntry. Stores
// overwrite unconditionally, entries are never merged, and two positions
// sharing a 64-bit key simply share the slot. Not safe for concurrent
// use; a table belongs to exactly one search.
type TransTable struct {
	entries map[uint64]TTEntry
	max     int
}

// NewTransTable builds a table that holds up to maxEntries before
// ResetIfFull clears it. maxEntries <= 0 selects DefaultTableSize.
func NewTransTable(maxEntries int) *TransTable {
	if maxEntries <= 0 {
		maxEntries = DefaultTableSize
	}
	return &TransTable{
		entries: make(map[uint64]TTEntry),
		max:     maxEntries,
	}
}

// Lookup returns the entry stored under hash, if any.
func (t *TransTable) Lookup(hash uint64) (TTEntry, bool) {
	e, ok := t.entries[hash]
	return e, ok
}

// Store records the entry under hash, replacing any previous one.
func (t *TransTable) Store(hash uint64, e TTEntry) {
	t.entries[hash] = e
}

// Clear drops every entry.
func (t *TransTable) Clear() {
	t.entries = make(map[uint64]TTEntry)
}

// Len returns the number of live entries.
func (t *TransTable) Len() int { return len(t.entries) }

// MaxEntries returns the configured bound.
func (t *TransTable) MaxEntries() int { return t.max }

// ResetIfFull applies the capacity policy: once the table has grown past
// its bound it is cleared whole at the start of the next top-level
// search, rather than evicting entry by entry. Reports whether it fired.
func (t *TransTable) ResetIfFull() bool {
	if len(t.entries) <= t.max {
		return false
	}
	t.Clear()
	return true
}
