package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// ParseSide accepts "a", "b", "1" or "2", case-insensitively.
func ParseSide(s string) (chess.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "1":
		return chess.SideA, nil
	case "b", "2":
		return chess.SideB, nil
	}
	return chess.Neutral, fmt.Errorf("unknown side %q: %w", s, errors.ErrInvalidConfig)
}

// ParseCoord parses "f,r".
func ParseCoord(s string) (chess.Coord, error) {
	file, rank, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return chess.Coord{}, fmt.Errorf("square %q is not file,rank: %w", s, errors.ErrInvalidConfig)
	}
	f, err := strconv.Atoi(strings.TrimSpace(file))
	if err != nil {
		return chess.Coord{}, fmt.Errorf("square %q: bad file: %w", s, errors.ErrInvalidConfig)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rank))
	if err != nil {
		return chess.Coord{}, fmt.Errorf("square %q: bad rank: %w", s, errors.ErrInvalidConfig)
	}
	return chess.Coord{File: f, Rank: r}, nil
}

// ParseMove parses "f,r-f,r". Bounds are checked when the move is played.
func ParseMove(s string) (from, to chess.Coord, err error) {
	src, dst, ok := strings.Cut(s, "-")
	if !ok {
		return from, to, fmt.Errorf("move %q is not f,r-f,r: %w", s, errors.ErrInvalidConfig)
	}
	if from, err = ParseCoord(src); err != nil {
		return from, to, err
	}
	if to, err = ParseCoord(dst); err != nil {
		return from, to, err
	}
	return from, to, nil
}
