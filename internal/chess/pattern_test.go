package chess

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sorted(cs []Coord) []Coord {
	out := append([]Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// TestKnightCorner verifies only in-bounds L offsets survive from a corner
func TestKnightCorner(t *testing.T) {
	got := sorted(ThreatPattern{Geometry: LShape}.ThreatenedSquares(Coord{0, 0}, 8))
	want := []Coord{{1, 2}, {2, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("knight at 0,0 mismatch (-want +got):\n%s", diff)
	}
}

func TestThreatPattern_IsThreatening(t *testing.T) {
	tests := []struct {
		name    string
		pattern ThreatPattern
		origin  Coord
		target  Coord
		want    bool
	}{
		{"straight same file", ThreatPattern{Straight, Unlimited}, Coord{3, 3}, Coord{3, 7}, true},
		{"straight same rank", ThreatPattern{Straight, Unlimited}, Coord{3, 3}, Coord{0, 3}, true},
		{"straight off line", ThreatPattern{Straight, Unlimited}, Coord{3, 3}, Coord{4, 4}, false},
		{"straight within distance", ThreatPattern{Straight, 1}, Coord{3, 3}, Coord{3, 4}, true},
		{"straight beyond distance", ThreatPattern{Straight, 1}, Coord{3, 3}, Coord{3, 5}, false},
		{"straight origin", ThreatPattern{Straight, Unlimited}, Coord{3, 3}, Coord{3, 3}, false},
		{"diagonal", ThreatPattern{Diagonal, Unlimited}, Coord{0, 0}, Coord{5, 5}, true},
		{"anti-diagonal", ThreatPattern{Diagonal, Unlimited}, Coord{0, 5}, Coord{5, 0}, true},
		{"diagonal same file", ThreatPattern{Diagonal, Unlimited}, Coord{2, 2}, Coord{2, 5}, false},
		{"diagonal same rank", ThreatPattern{Diagonal, Unlimited}, Coord{2, 2}, Coord{6, 2}, false},
		{"diagonal beyond distance", ThreatPattern{Diagonal, 1}, Coord{2, 2}, Coord{4, 4}, false},
		{"diagonal origin", ThreatPattern{Diagonal, 1}, Coord{2, 2}, Coord{2, 2}, false},
		{"L 1-2", ThreatPattern{LShape, 0}, Coord{4, 4}, Coord{5, 6}, true},
		{"L 2-1", ThreatPattern{LShape, 0}, Coord{4, 4}, Coord{2, 3}, true},
		{"L straight", ThreatPattern{LShape, 0}, Coord{4, 4}, Coord{4, 6}, false},
		{"no geometry", ThreatPattern{}, Coord{4, 4}, Coord{4, 5}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.pattern.IsThreatening(tt.origin, tt.target); got != tt.want {
				t.Errorf("IsThreatening(%v, %v) = %v, want %v", tt.origin, tt.target, got, tt.want)
			}
		})
	}
}

// TestThreatPattern_EnumerationConsistency checks that every pattern of every
// kind threatens exactly the squares it enumerates, from every origin.
func TestThreatPattern_EnumerationConsistency(t *testing.T) {
	for _, size := range []int{1, 3, 5, 8} {
		for kind := King; kind < NumKinds; kind++ {
			for _, pattern := range Patterns(kind) {
				for f := 0; f < size; f++ {
					for r := 0; r < size; r++ {
						origin := Coord{f, r}
						listed := make(map[Coord]bool)
						for _, sq := range pattern.ThreatenedSquares(origin, size) {
							if !sq.InBounds(size) {
								t.Fatalf("%s %+v from %v on %d: enumerated off-board %v", kind, pattern, origin, size, sq)
							}
							if sq == origin {
								t.Fatalf("%s %+v from %v: enumerated origin", kind, pattern, origin)
							}
							if listed[sq] {
								t.Fatalf("%s %+v from %v: %v enumerated twice", kind, pattern, origin, sq)
							}
							listed[sq] = true
						}
						for tf := 0; tf < size; tf++ {
							for tr := 0; tr < size; tr++ {
								target := Coord{tf, tr}
								if got := pattern.IsThreatening(origin, target); got != listed[target] {
									t.Errorf("%s %+v from %v to %v on %d: IsThreatening = %v, enumerated = %v",
										kind, pattern, origin, target, size, got, listed[target])
								}
							}
						}
					}
				}
			}
		}
	}
}

func TestThreatPattern_Counts(t *testing.T) {
	tests := []struct {
		kind   Kind
		origin Coord
		size   int
		want   int
	}{
		{King, Coord{1, 1}, 3, 8},
		{King, Coord{0, 0}, 3, 3},
		{Queen, Coord{0, 0}, 8, 21},
		{Queen, Coord{3, 3}, 8, 27},
		{Rook, Coord{3, 3}, 8, 14},
		{Bishop, Coord{0, 0}, 8, 7},
		{Knight, Coord{4, 4}, 8, 8},
		{Pawn, Coord{4, 4}, 8, 4},
		{Empty, Coord{4, 4}, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := 0
			for _, p := range Patterns(tt.kind) {
				got += len(p.ThreatenedSquares(tt.origin, tt.size))
			}
			if got != tt.want {
				t.Errorf("%s at %v on %d: %d squares, want %d", tt.kind, tt.origin, tt.size, got, tt.want)
			}
		})
	}
}

func TestPatterns_Unknown(t *testing.T) {
	if got := Patterns(Kind(42)); got != nil {
		t.Errorf("Patterns(42) = %v, want nil", got)
	}
	if got := (ThreatPattern{}).ThreatenedSquares(Coord{0, 0}, 8); got != nil {
		t.Errorf("empty pattern ThreatenedSquares = %v, want nil", got)
	}
}
