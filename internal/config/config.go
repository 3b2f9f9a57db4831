// Package config provides configuration for the perft tool.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxDepth bounds the search depth; perft grows roughly 30x per ply.
const MaxDepth = 10

// Config holds all program configuration.
type Config struct {
	FEN    string // Root position
	Depth  int    // Plies to expand
	Divide bool   // Report node counts per root move

	Workers   int  // Goroutines used for root moves
	UseCache  bool // Memoize subtree totals by position key
	CacheSize int  // Maximum cache entries (0 = unlimited)

	Verbosity int // 0=results only, 1=timing, 2=per-move progress

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FEN:        StartFEN,
		Depth:      1,
		Workers:    runtime.NumCPU(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the settings that can be checked without parsing the FEN.
func (c *Config) Validate() error {
	switch {
	case c.FEN == "":
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	case c.Depth < 0 || c.Depth > MaxDepth:
		return fmt.Errorf("depth %d outside 0..%d: %w", c.Depth, MaxDepth, errors.ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	case c.CacheSize < 0:
		return fmt.Errorf("negative cache size %d: %w", c.CacheSize, errors.ErrInvalidConfig)
	case c.OutputFile == nil:
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
