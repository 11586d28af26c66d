package chess

import "testing"

func TestSide_Opponent(t *testing.T) {
	tests := []struct {
		side   Side
		want   Side
		wantOK bool
	}{
		{SideA, SideB, true},
		{SideB, SideA, true},
		{Neutral, Neutral, false},
	}
	for _, tt := range tests {
		got, ok := tt.side.Opponent()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%v.Opponent() = (%v, %v), want (%v, %v)", tt.side, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	for kind := King; kind < Empty; kind++ {
		for _, side := range []Side{SideA, SideB} {
			g := Glyph(kind, side)
			gotKind, gotSide, ok := ParseGlyph(g)
			if !ok || gotKind != kind || gotSide != side {
				t.Errorf("ParseGlyph(Glyph(%v, %v) = %q) = (%v, %v, %v)", kind, side, g, gotKind, gotSide, ok)
			}
		}
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		kind Kind
		side Side
		want byte
	}{
		{King, SideB, 'K'},
		{King, SideA, 'k'},
		{Knight, SideB, 'N'},
		{Pawn, SideA, 'p'},
		{Empty, Neutral, '-'},
		{Empty, SideA, '-'},
		{Kind(99), SideA, '?'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.kind, tt.side); got != tt.want {
			t.Errorf("Glyph(%v, %v) = %q, want %q", tt.kind, tt.side, got, tt.want)
		}
	}
}

func TestParseGlyph(t *testing.T) {
	tests := []struct {
		in       byte
		wantKind Kind
		wantSide Side
		wantOK   bool
	}{
		{'-', Empty, Neutral, true},
		{'q', Queen, SideA, true},
		{'R', Rook, SideB, true},
		{'x', Empty, Neutral, false},
		{'!', Empty, Neutral, false},
	}
	for _, tt := range tests {
		kind, side, ok := ParseGlyph(tt.in)
		if kind != tt.wantKind || side != tt.wantSide || ok != tt.wantOK {
			t.Errorf("ParseGlyph(%q) = (%v, %v, %v), want (%v, %v, %v)",
				tt.in, kind, side, ok, tt.wantKind, tt.wantSide, tt.wantOK)
		}
	}
}

func TestCoord(t *testing.T) {
	if !(Coord{0, 0}).InBounds(1) {
		t.Error("0,0 should be on a 1x1 board")
	}
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if c.InBounds(3) {
			t.Errorf("%v.InBounds(3) = true, want false", c)
		}
	}
	if got := (Coord{2, 5}).String(); got != "2,5" {
		t.Errorf("String() = %q, want %q", got, "2,5")
	}
	if !(Coord{1, 9}).Less(Coord{2, 0}) || (Coord{2, 0}).Less(Coord{2, 0}) {
		t.Error("Less should order file-major and be strict")
	}
}
