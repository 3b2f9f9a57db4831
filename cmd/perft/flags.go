// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Root position in FEN (default: starting position)")
	moveList  = flag.String("moves", "", "Moves to play from the root first, e.g. \"e2e4 e7e5\"")

	// Search
	depth  = flag.Int("depth", 1, "Number of plies to expand")
	divide = flag.Bool("divide", false, "Print node counts for each root move")

	// Performance options
	workers   = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	useCache  = flag.Bool("cache", false, "Memoize subtree totals by position key")
	cacheSize = flag.Int("cache-size", 0, "Maximum cache entries (0 = unlimited)")

	// Output
	showBoard = flag.Bool("board", false, "Print the root board and its status before counting")
	verbose   = flag.Int("v", 1, "Verbosity: 0=results only, 1=timing, 2=per-move progress")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applySearchFlags(cfg)

	cfg.Verbosity = *verbose
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPositionFlags configures the root position.
func applyPositionFlags(cfg *config.Config) {
	if *fenString != "" {
		cfg.FEN = *fenString
	}
}

// applySearchFlags configures depth, divide and parallelism.
func applySearchFlags(cfg *config.Config) {
	cfg.Depth = *depth
	cfg.Divide = *divide
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.UseCache = *useCache
	cfg.CacheSize = *cacheSize
}
