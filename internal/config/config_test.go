package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.FirstMover != chess.SideA {
		t.Errorf("FirstMover = %v, want A", cfg.FirstMover)
	}
	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.Size != 0 {
		t.Errorf("Size = %d, want 0", cfg.Size)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.Output.ListMoves || cfg.Output.ShowThreats {
		t.Error("ListMoves and ShowThreats should be false by default")
	}
	if cfg.Perft.Enabled() {
		t.Error("perft should be disabled by default")
	}
	if cfg.Perft.Workers < 1 {
		t.Errorf("Perft.Workers = %d, want >= 1", cfg.Perft.Workers)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults with board file", func(*Config) {}, false},
		{"no board file", func(c *Config) { c.BoardFile = "" }, true},
		{"negative size", func(c *Config) { c.Size = -1 }, true},
		{"neutral first mover", func(c *Config) { c.FirstMover = chess.Neutral }, true},
		{"side B first", func(c *Config) { c.FirstMover = chess.SideB }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"good moves", func(c *Config) { c.Moves = []string{"0,0-1,1", "2,2-0,0"} }, false},
		{"bad move", func(c *Config) { c.Moves = []string{"0,0-1"} }, true},
		{"negative perft depth", func(c *Config) { c.Perft.Depth = -1 }, true},
		{"no perft workers", func(c *Config) { c.Perft.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.BoardFile = "test.board"
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_CheckSize(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.CheckSize(7); err != nil {
		t.Errorf("CheckSize with no expectation: %v", err)
	}
	cfg.Size = 8
	if err := cfg.CheckSize(8); err != nil {
		t.Errorf("CheckSize(8): %v", err)
	}
	if err := cfg.CheckSize(6); !errors.Is(err, errors.ErrMalformedBoard) {
		t.Errorf("CheckSize(6) = %v, want ErrMalformedBoard", err)
	}
}

// TestConfig_Logf verifies verbosity gating
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfig()
	cfg.SetLog(buf)
	cfg.Verbosity = Summary

	cfg.Logf(Summary, "loaded %d\n", 1)
	cfg.Logf(Commentary, "move %d\n", 2)

	if got := buf.String(); got != "loaded 1\n" {
		t.Errorf("log = %q, want %q", got, "loaded 1\n")
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithBoardFile("x.board").
		WithSize(5).
		WithFirstMover(chess.SideB).
		WithMoves("0,0-1,1").
		WithMoves("1,1-2,2").
		WithPerft(3, 2).
		WithDistinctPositions(true).
		ListMoves(true).
		WithVerbosity(Commentary).
		Build()

	if cfg.BoardFile != "x.board" || cfg.Size != 5 {
		t.Errorf("BoardFile, Size = %q, %d", cfg.BoardFile, cfg.Size)
	}
	if cfg.FirstMover != chess.SideB {
		t.Errorf("FirstMover = %v, want B", cfg.FirstMover)
	}
	if len(cfg.Moves) != 2 {
		t.Errorf("Moves = %v, want two", cfg.Moves)
	}
	if cfg.Perft.Depth != 3 || cfg.Perft.Workers != 2 || !cfg.Perft.CountDistinct {
		t.Errorf("Perft = %+v", cfg.Perft)
	}
	if !cfg.Output.ListMoves {
		t.Error("ListMoves should be true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Side
		wantErr bool
	}{
		{"a", chess.SideA, false},
		{"A", chess.SideA, false},
		{"1", chess.SideA, false},
		{"b", chess.SideB, false},
		{" 2 ", chess.SideB, false},
		{"neutral", chess.Neutral, true},
		{"", chess.Neutral, true},
	}
	for _, tt := range tests {
		got, err := ParseSide(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseSide(%q) = %v, %v; want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in       string
		from, to chess.Coord
		wantErr  bool
	}{
		{"0,0-1,2", chess.Coord{File: 0, Rank: 0}, chess.Coord{File: 1, Rank: 2}, false},
		{" 3, 4 - 5,6", chess.Coord{File: 3, Rank: 4}, chess.Coord{File: 5, Rank: 6}, false},
		{"10,11-0,0", chess.Coord{File: 10, Rank: 11}, chess.Coord{File: 0, Rank: 0}, false},
		{"0,0", chess.Coord{}, chess.Coord{}, true},
		{"0,0-1", chess.Coord{File: 0, Rank: 0}, chess.Coord{}, true},
		{"x,0-1,1", chess.Coord{}, chess.Coord{}, true},
		{"0,y-1,1", chess.Coord{}, chess.Coord{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, err := ParseMove(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if from != tt.from || to != tt.to {
				t.Errorf("ParseMove(%q) = %v, %v; want %v, %v", tt.in, from, to, tt.from, tt.to)
			}
		})
	}
}
