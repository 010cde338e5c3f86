// Command searchbench runs the engine on a position and reports the
// chosen move with the search counters, for eyeballing strength and
// timing changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"chessmind/board"
	"chessmind/engine"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to the initial position)")
	sideFlag := flag.String("side", "", "override the side to move: white or black (default keeps the FEN's)")
	difficulty := flag.String("difficulty", "medium", "preset: easy, medium, hard or expert")
	moveTime := flag.Duration("movetime", 0, "override the preset's time limit (0 keeps it)")
	maxDepth := flag.Int("maxdepth", 0, "override the preset's depth ceiling (0 keeps it)")
	repeat := flag.Int("repeat", 1, "run the search N times against the same engine")
	verbose := flag.Bool("verbose", false, "log per-depth search progress")
	flag.Parse()

	pos, side, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse fen: %v\n", err)
		os.Exit(2)
	}
	switch *sideFlag {
	case "":
	case "white", "w":
		side = board.White
	case "black", "b":
		side = board.Black
	default:
		fmt.Fprintf(os.Stderr, "unknown side %q (want white or black)\n", *sideFlag)
		os.Exit(2)
	}
	diff, err := engine.ParseDifficulty(*difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	budget := engine.NewBudget(diff)
	if *moveTime > 0 || *maxDepth > 0 {
		limit := diff.TimeLimit()
		if *moveTime > 0 {
			limit = *moveTime
		}
		ceiling := diff.MaxDepth()
		if *maxDepth > 0 {
			ceiling = *maxDepth
		}
		budget = engine.CustomBudget(ceiling, limit)
	}

	e := engine.NewEngine(engine.WithLogger(logger))
	for i := 0; i < *repeat; i++ {
		start := time.Now()
		mv, ok := e.FindBestMove(pos, side, budget)
		if !ok {
			fmt.Printf("no legal moves: %s is in %s\n", side, pos.Status(side))
			return
		}
		stats := e.Stats()
		fmt.Printf("move %s \tscore %d \tdepth %d \tnodes %d \ttime %s\n",
			mv, stats.Score, stats.Depth, stats.Nodes, time.Since(start).Round(time.Millisecond))
		fmt.Printf("  per depth: %v\n", lo.Map(stats.DepthDurations, func(d time.Duration, i int) string {
			return fmt.Sprintf("d%d=%s", i+1, d.Round(time.Millisecond))
		}))
	}
}
