// perft counts the positions reachable from a chess position to a fixed
// depth, optionally per root move. It is a debugging aid for move generation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, *moveList, *showBoard); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run sets up the root position, plays the prefix moves and reports the
// node count to cfg.OutputFile.
func run(cfg *config.Config, moves string, board bool) error {
	g, err := setupGame(cfg.FEN, moves)
	if err != nil {
		return err
	}

	if board {
		printBoard(cfg.OutputFile, g)
	}

	var cache *hashing.NodeCache
	if cfg.UseCache {
		cache = hashing.NewNodeCache(cfg.CacheSize)
	}

	start := time.Now()
	var nodes uint64
	if cfg.Divide && cfg.Depth > 0 {
		results, err := engine.ParallelDivide(g, cfg.Depth, cfg.Workers, cache)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", r.Move, r.Nodes)
			cfg.Logf(2, "%s done", r.Move)
		}
		nodes = engine.TotalNodes(results)
		fmt.Fprintln(cfg.OutputFile)
		fmt.Fprintf(cfg.OutputFile, "Moves: %d\n", len(results))
	} else if cfg.Workers > 1 && cfg.Depth > 1 {
		results, err := engine.ParallelDivide(g, cfg.Depth, cfg.Workers, cache)
		if err != nil {
			return err
		}
		nodes = engine.TotalNodes(results)
	} else {
		nodes = engine.PerftCached(g, cfg.Depth, cache)
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", nodes)

	cfg.Logf(1, "depth %d, %d workers, %v", cfg.Depth, cfg.Workers, elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		cfg.Logf(1, "%.0f nodes/s", float64(nodes)/secs)
	}
	if cache != nil {
		cfg.Logf(1, "cache: %d entries, %d hits", cache.Len(), cache.Hits())
	}
	return nil
}

// setupGame reads the FEN and plays the space-separated prefix moves.
func setupGame(fen, moves string) (*engine.GameState, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for i, text := range strings.Fields(moves) {
		if _, err := g.PlayMove(text); err != nil {
			return nil, errors.Wrapf(err, "prefix move %d", i+1)
		}
	}
	return g, nil
}

// printBoard writes the board, FEN and status of g.
func printBoard(w io.Writer, g *engine.GameState) {
	fmt.Fprint(w, g.Board().String())
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	fmt.Fprintf(w, "Status: %s\n\n", g.Status())
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts legal move sequences from a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 5 -workers 8\n")
	fmt.Fprintf(os.Stderr, "  perft -fen \"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\" -depth 3 -divide\n")
	fmt.Fprintf(os.Stderr, "  perft -moves \"e2e4 e7e5\" -depth 2 -board\n")
}
