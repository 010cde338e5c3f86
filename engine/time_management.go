package engine

import (
	"time"

	"github.com/pkg/errors"
)

// Difficulty selects how hard the engine thinks: a ceiling on the
// deepening loop and a wall-clock allowance per move.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// MaxDepth returns the deepening ceiling for the preset.
func (d Difficulty) MaxDepth() int {
	switch d {
	case Easy:
		return 2
	case Hard:
		return 6
	case Expert:
		return 8
	default:
		return 4
	}
}

// TimeLimit returns the per-move allowance for the preset.
func (d Difficulty) TimeLimit() time.Duration {
	switch d {
	case Easy:
		return 200 * time.Millisecond
	case Hard:
		return 3 * time.Second
	case Expert:
		return 8 * time.Second
	default:
		return 800 * time.Millisecond
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty reads a preset name, case as given.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return Medium, errors.Errorf("difficulty %q: want easy, medium, hard or expert", s)
	}
}

// maxSearchDepth caps the deepening loop when a budget names no ceiling.
const maxSearchDepth = 64

// Budget bounds a single FindBestMove call: a start timestamp taken when
// the search begins, a wall-clock limit, and a depth ceiling. A zero
// limit means no clock at all, which together with a fixed depth gives
// reproducible searches for tests and benches. One budget belongs to one
// search invocation; concurrent searches each get their own.
type Budget struct {
	start    time.Time
	limit    time.Duration
	maxDepth int
}

// NewBudget derives a budget from a difficulty preset.
func NewBudget(d Difficulty) Budget {
	return Budget{limit: d.TimeLimit(), maxDepth: d.MaxDepth()}
}

// CustomBudget builds a budget from raw numbers. maxDepth <= 0 leaves
// the ceiling at maxSearchDepth; limit <= 0 runs without a clock.
func CustomBudget(maxDepth int, limit time.Duration) Budget {
	return Budget{limit: limit, maxDepth: maxDepth}
}

// begin stamps the start time. The search calls it once on entry.
func (b *Budget) begin() {
	b.start = time.Now()
	if b.maxDepth <= 0 {
		b.maxDepth = maxSearchDepth
	}
}

// MaxDepth returns the deepening ceiling.
func (b Budget) MaxDepth() int { return b.maxDepth }

// TimeLimit returns the wall-clock allowance, zero when unlimited.
func (b Budget) TimeLimit() time.Duration { return b.limit }

// Elapsed returns the time since the search began.
func (b Budget) Elapsed() time.Duration { return time.Since(b.start) }

// Expired reports whether the allowance is used up.
func (b Budget) Expired() bool {
	return b.limit > 0 && b.Elapsed() > b.limit
}

// halfSpent reports whether more than half the allowance is gone, the
// point after which starting another full iteration rarely pays off.
func (b Budget) halfSpent() bool {
	return b.limit > 0 && b.Elapsed() > b.limit/2
}
