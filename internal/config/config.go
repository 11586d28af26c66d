// Package config provides configuration for threatboard.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // errors only
	Summary    = 1 // board, status and totals
	Commentary = 2 // running commentary: every move and perft branch
)

// Config holds all program configuration.
type Config struct {
	// BoardFile is the layout to load.
	BoardFile string

	// Size is the expected board dimension. 0 takes it from the file.
	Size int

	// FirstMover is the side that moves first.
	FirstMover chess.Side

	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// Moves are applied in order after loading, each as "f,r-f,r".
	Moves []string

	Output OutputConfig
	Perft  PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FirstMover: chess.SideA,
		Verbosity:  Summary,
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer reports are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are printed to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BoardFile == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "no board file given")
	}
	if c.Size < 0 {
		return fmt.Errorf("board size %d is negative: %w", c.Size, errors.ErrInvalidConfig)
	}
	if c.FirstMover != chess.SideA && c.FirstMover != chess.SideB {
		return fmt.Errorf("side %s cannot move first: %w", c.FirstMover, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d not in [%d,%d]: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	for _, m := range c.Moves {
		if _, _, err := ParseMove(m); err != nil {
			return err
		}
	}
	return c.Perft.Validate()
}

// CheckSize reports an error when an expected size was configured and the
// loaded board differs from it.
func (c *Config) CheckSize(size int) error {
	if c.Size != 0 && c.Size != size {
		return fmt.Errorf("board file %s is %dx%d, expected %dx%d: %w",
			c.BoardFile, size, size, c.Size, c.Size, errors.ErrMalformedBoard)
	}
	return nil
}
