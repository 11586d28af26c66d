package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/engine"
)

// MustGame parses layout and builds a game with first to move.
// It calls t.Fatal if the layout is rejected.
func MustGame(t *testing.T, layout string, first chess.Side) *engine.Game {
	t.Helper()
	l, err := engine.ParseLayoutString(layout)
	if err != nil {
		t.Fatalf("ParseLayoutString(%q) error: %v", layout, err)
	}
	g, err := engine.NewGame(l, first)
	if err != nil {
		t.Fatalf("NewGame(%q) error: %v", layout, err)
	}
	return g
}

// MustMove applies a move and calls t.Fatal if it is rejected.
func MustMove(t *testing.T, g *engine.Game, from, to chess.Coord) {
	t.Helper()
	if err := g.MakeMove(from, to); err != nil {
		t.Fatalf("MakeMove(%v, %v) error: %v", from, to, err)
	}
}

// MustAt returns the occupant of c and calls t.Fatal on error.
func MustAt(t *testing.T, b *engine.Board, c chess.Coord) *engine.Piece {
	t.Helper()
	p, err := b.At(c)
	if err != nil {
		t.Fatalf("At(%v) error: %v", c, err)
	}
	return p
}

// RecomputedThreats builds the threat map of b by asking every non-empty
// piece whether it threatens every square. It shares no state with the
// board's incremental bookkeeping and serves as the oracle for it.
func RecomputedThreats(t *testing.T, b *engine.Board) map[chess.Coord][]chess.Coord {
	t.Helper()
	size := b.Size()
	var attackers []*engine.Piece
	for f := 0; f < size; f++ {
		for r := 0; r < size; r++ {
			if p := MustAt(t, b, chess.Coord{File: f, Rank: r}); !p.IsEmpty() {
				attackers = append(attackers, p)
			}
		}
	}

	m := make(map[chess.Coord][]chess.Coord)
	for f := 0; f < size; f++ {
		for r := 0; r < size; r++ {
			sq := chess.Coord{File: f, Rank: r}
			for _, a := range attackers {
				if a.IsThreatening(sq) {
					m[sq] = append(m[sq], a.Pos())
				}
			}
			sort.Slice(m[sq], func(i, j int) bool { return m[sq][i].Less(m[sq][j]) })
		}
	}
	return m
}

// AssertThreatsConsistent fails if the board's incrementally maintained
// threat map differs from a full recomputation.
func AssertThreatsConsistent(t *testing.T, b *engine.Board, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, b.ThreatMap(), RecomputedThreats(t, b), msgAndArgs...)
}

// SortedCoords returns a sorted copy of cs.
func SortedCoords(cs []chess.Coord) []chess.Coord {
	out := append([]chess.Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
