// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/threatboard/internal/config"
)

var (
	// Board options
	boardSize  = flag.Int("size", 0, "Expected board size (0 = take from the board file)")
	firstMover = flag.String("first", "a", "Side to move first: a or b")
	moveList   = flag.String("m", "", "Moves to apply after loading, e.g. '0,1-2,2 4,4-3,3'")

	// Report options
	noBoard     = flag.Bool("noboard", false, "Don't print the board")
	listMoves   = flag.Bool("moves", false, "List the legal moves of the side to move")
	showThreats = flag.Bool("threats", false, "Print who threatens each square")

	// Perft
	perftDepth    = flag.Int("perft", 0, "Enumerate the move tree to this depth (0 = off)")
	perftDistinct = flag.Bool("distinct", false, "Count distinct positions during -perft")
	workers       = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")
	verbosity  = flag.Int("v", config.Summary, "Verbosity: 0=silent, 1=summary, 2=running commentary")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags and positional arguments to the
// configuration.
func applyFlags(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		cfg.BoardFile = args[0]
	}
	cfg.Size = *boardSize

	side, err := config.ParseSide(*firstMover)
	if err != nil {
		return err
	}
	cfg.FirstMover = side
	cfg.Moves = splitMoves(*moveList)

	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	return nil
}

// applyOutputFlags configures what the report contains.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ListMoves = *listMoves
	cfg.Output.ShowThreats = *showThreats
}

// applyPerftFlags configures move-tree enumeration.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.CountDistinct = *perftDistinct
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// splitMoves splits a move list on whitespace or semicolons.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ';'
	})
}
