package engine

import "time"

// SearchStats is a read-only snapshot of the last FindBestMove call,
// meant for UI feedback and benches. Nothing in the search reads it
// back, so displaying or ignoring it cannot change what gets played.
type SearchStats struct {
	Nodes          uint64          // nodes entered across all iterations
	Elapsed        time.Duration   // wall clock for the whole call
	Depth          int             // deepest fully completed iteration
	Score          int32           // value of the chosen move, White positive
	TTHits         uint64          // table probes that cut work
	TTStores       uint64          // entries written
	TableCleared   bool            // capacity policy fired on entry
	DepthDurations []time.Duration // per-iteration wall clock, depth 1 first
}

// Stats returns a copy of the last search's counters.
func (e *Engine) Stats() SearchStats {
	s := e.stats
	s.DepthDurations = append([]time.Duration(nil), e.stats.DepthDurations...)
	return s
}
