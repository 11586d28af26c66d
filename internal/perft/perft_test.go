package perft

import (
	"context"
	"testing"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/engine"
	"github.com/lgbarn/threatboard/internal/errors"
	"github.com/lgbarn/threatboard/internal/hashing"
	"github.com/lgbarn/threatboard/internal/testutil"
)

const kingsOnly = "k - -\n- - -\n- - K\n"

const smallLayout = `
k - - r
n - - -
- - B -
P - - K
`

const mixedLayout = `
r n - - k -
p - - p - -
- - q - - b
- - - B - -
- - P - - N
- - K - R Q
`

// naive is a single-goroutine enumeration used as the reference.
func naive(t *testing.T, g *engine.Game, depth int, seen *hashing.PositionSet) Result {
	t.Helper()
	ended := g.Board().PositionValue() != 0
	var moves []engine.Move
	if depth > 0 && !ended {
		moves = g.LegalMoves()
	}
	if len(moves) == 0 {
		seen.CheckAndAdd(g)
		r := Result{Nodes: 1}
		switch {
		case ended:
			r.Checkmates = 1
		case g.Player(g.ToMove()).IsInStalemate():
			r.Stalemates = 1
		}
		return r
	}
	var total Result
	for _, mv := range moves {
		child := g.Clone()
		testutil.MustMove(t, child, mv.From, mv.To)
		total.add(naive(t, child, depth-1, seen))
	}
	return total
}

func TestRun_Small(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		depth  int
		want   Result
	}{
		{"kings depth 1", kingsOnly, 1, Result{Nodes: 2, Distinct: 2}},
		{"kings depth 2", kingsOnly, 2, Result{Nodes: 2, Distinct: 2}},
		{"checkmated at root", "k - -\n- Q -\n- R -\n", 3, Result{Nodes: 1, Checkmates: 1, Distinct: 1}},
		{"stalemated at root", "k - -\n- - -\n- Q -\n", 2, Result{Nodes: 1, Stalemates: 1, Distinct: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.layout, chess.SideA)
			got, err := Run(context.Background(), g, tt.depth, WithWorkers(2), WithDistinct(true))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

// TestRun_MatchesNaive compares the parallel enumeration with a sequential
// one for several worker counts.
func TestRun_MatchesNaive(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		depth  int
	}{
		{"small depth 3", smallLayout, 3},
		{"mixed depth 2", mixedLayout, 2},
	}

	for _, tt := range tests {
		g := testutil.MustGame(t, tt.layout, chess.SideA)
		seen := hashing.NewPositionSet(0)
		want := naive(t, g, tt.depth, seen)
		want.Distinct = seen.UniqueCount()
		if want.Nodes == 0 {
			t.Fatalf("%s: reference found no nodes", tt.name)
		}

		for _, workers := range []int{1, 3, 8} {
			got, err := Run(context.Background(), g, tt.depth, WithWorkers(workers), WithDistinct(true))
			testutil.AssertNoError(t, err, "%s with %d workers", tt.name, workers)
			testutil.AssertEqual(t, got, want, "%s with %d workers", tt.name, workers)
		}
	}
}

func TestRun_LeavesGameUntouched(t *testing.T) {
	g := testutil.MustGame(t, smallLayout, chess.SideA)
	render := g.Board().String()
	threats := g.Board().ThreatMap()

	_, err := Run(context.Background(), g, 2, WithWorkers(4))
	testutil.AssertNoError(t, err)

	if got := g.Board().String(); got != render {
		t.Errorf("board changed:\n%s", got)
	}
	testutil.AssertEqual(t, g.Board().ThreatMap(), threats)
	if g.ToMove() != chess.SideA {
		t.Errorf("ToMove() = %v, want A", g.ToMove())
	}
}

func TestRun_BranchFunc(t *testing.T) {
	g := testutil.MustGame(t, smallLayout, chess.SideA)
	branches := make(map[engine.Move]Result)

	total, err := Run(context.Background(), g, 2, WithWorkers(3), WithBranchFunc(func(mv engine.Move, r Result) {
		branches[mv] = r
	}))
	testutil.AssertNoError(t, err)

	if len(branches) != len(g.LegalMoves()) {
		t.Errorf("%d branches reported, want %d", len(branches), len(g.LegalMoves()))
	}
	var sum Result
	for _, r := range branches {
		sum.add(r)
	}
	testutil.AssertEqual(t, sum, total)
}

func TestRun_Errors(t *testing.T) {
	g := testutil.MustGame(t, smallLayout, chess.SideA)

	_, err := Run(context.Background(), g, 0)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, g, 3, WithWorkers(2))
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestResult_String(t *testing.T) {
	r := Result{Nodes: 10, Checkmates: 2, Stalemates: 1, Distinct: 7}
	want := "nodes 10, checkmates 2, stalemates 1, distinct 7"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
