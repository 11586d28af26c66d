// threatboard loads a chess-variant board, maintains the threat relation
// between its pieces and reports check, checkmate, stalemate and legal moves.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/threatboard/internal/config"
	"github.com/lgbarn/threatboard/internal/engine"
	"github.com/lgbarn/threatboard/internal/perft"
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
		fmt.Printf("threatboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Logf(config.Summary, "Elapsed: %v\n", time.Since(start).Round(time.Microsecond))
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// run loads the board, plays the configured moves, prints the report and
// runs perft if requested.
func run(ctx context.Context, cfg *config.Config) error {
	g, err := loadGame(cfg)
	if err != nil {
		return err
	}

	if err := playMoves(cfg, g); err != nil {
		return err
	}

	if err := writeReport(cfg.OutputFile, cfg, g); err != nil {
		return err
	}

	if cfg.Perft.Enabled() {
		return runPerft(ctx, cfg, g)
	}
	return nil
}

// loadGame reads the board file and builds the game.
func loadGame(cfg *config.Config) (*engine.Game, error) {
	layout, err := engine.LoadLayoutFile(cfg.BoardFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.CheckSize(layout.Size); err != nil {
		return nil, err
	}

	g, err := engine.NewGame(layout, cfg.FirstMover)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.BoardFile, err)
	}
	cfg.Logf(config.Summary, "Loaded %s (%dx%d), game %s\n", cfg.BoardFile, layout.Size, layout.Size, g.ID())
	return g, nil
}

// playMoves applies cfg.Moves in order; the first rejected move stops play.
func playMoves(cfg *config.Config, g *engine.Game) error {
	for i, text := range cfg.Moves {
		from, to, err := config.ParseMove(text)
		if err != nil {
			return err
		}
		side := g.ToMove()
		if err := g.MakeMove(from, to); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		cfg.Logf(config.Commentary, "%d. %s %s -> %s\n", i+1, side, from, to)
	}
	return nil
}

// runPerft enumerates the move tree and prints the totals.
func runPerft(ctx context.Context, cfg *config.Config, g *engine.Game) error {
	start := time.Now()
	r, err := perft.Run(ctx, g, cfg.Perft.Depth,
		perft.WithWorkers(cfg.Perft.Workers),
		perft.WithDistinct(cfg.Perft.CountDistinct),
		perft.WithBranchFunc(func(mv engine.Move, r perft.Result) {
			cfg.Logf(config.Commentary, "  %s: %d\n", mv, r.Nodes)
		}))
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "perft %d: %s\n", cfg.Perft.Depth, r)
	cfg.Logf(config.Summary, "Perft with %d worker(s) took %v\n", cfg.Perft.Workers, time.Since(start).Round(time.Microsecond))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: threatboard [options] board-file\n\n")
	fmt.Fprintf(os.Stderr, "Loads an N×N board and reports the threat state of its pieces.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBoard file format:\n")
	fmt.Fprintf(os.Stderr, "  One row per line, one glyph per square, spaces ignored.\n")
	fmt.Fprintf(os.Stderr, "  K Q R N B P for side B, k q r n b p for side A, - for empty.\n")
	fmt.Fprintf(os.Stderr, "  Squares are addressed as row,column from the top left, e.g. 0,4.\n")
}
