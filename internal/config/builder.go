package config

import (
	"io"

	"github.com/lgbarn/threatboard/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardFile sets the layout file to load.
func (b *ConfigBuilder) WithBoardFile(path string) *ConfigBuilder {
	b.cfg.BoardFile = path
	return b
}

// WithSize sets the expected board size.
func (b *ConfigBuilder) WithSize(size int) *ConfigBuilder {
	b.cfg.Size = size
	return b
}

// WithFirstMover sets the side that moves first.
func (b *ConfigBuilder) WithFirstMover(side chess.Side) *ConfigBuilder {
	b.cfg.FirstMover = side
	return b
}

// WithMoves appends moves to apply after loading.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = append(b.cfg.Moves, moves...)
	return b
}

// WithPerft enables enumeration to depth over workers goroutines.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithDistinctPositions enables counting distinct positions during perft.
func (b *ConfigBuilder) WithDistinctPositions(enabled bool) *ConfigBuilder {
	b.cfg.Perft.CountDistinct = enabled
	return b
}

// ListMoves controls whether legal moves are printed.
func (b *ConfigBuilder) ListMoves(list bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = list
	return b
}

// ShowThreats controls whether the threat map is printed.
func (b *ConfigBuilder) ShowThreats(show bool) *ConfigBuilder {
	b.cfg.Output.ShowThreats = show
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
