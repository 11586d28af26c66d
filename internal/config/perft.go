package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/threatboard/internal/errors"
)

// PerftConfig holds settings for move-tree enumeration.
type PerftConfig struct {
	// Depth in plies. 0 disables enumeration.
	Depth int

	// Workers is the number of goroutines branches are spread over.
	Workers int

	// CountDistinct tracks distinct positions by hash.
	CountDistinct bool
}

// NewPerftConfig creates a PerftConfig with default values.
// Enumeration is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Enabled reports whether enumeration was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
