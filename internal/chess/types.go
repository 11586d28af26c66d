// Package chess provides the leaf types of the threat engine: board
// coordinates, piece kinds, sides and the movement patterns each kind
// projects.
package chess

import "fmt"

// Side identifies the owner of a square's occupant.
type Side int

const (
	Neutral Side = iota // Owner of empty squares
	SideA               // Lower-case glyphs
	SideB               // Upper-case glyphs
	NumSides
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	case Neutral:
		return "Neutral"
	}
	return "Unknown"
}

// Opponent returns the opposing side. Neutral has no opponent.
func (s Side) Opponent() (Side, bool) {
	switch s {
	case SideA:
		return SideB, true
	case SideB:
		return SideA, true
	}
	return Neutral, false
}

// Kind represents a piece type.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Knight
	Bishop
	Pawn
	Empty
	NumKinds
)

var kindNames = [NumKinds]string{"King", "Queen", "Rook", "Knight", "Bishop", "Pawn", "Empty"}

// kindGlyphs holds the upper-case glyph of each kind.
var kindGlyphs = [NumKinds]byte{'K', 'Q', 'R', 'N', 'B', 'P', '-'}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Glyph returns the single character used to render a kind owned by side.
// SideA pieces are lower case; everything else is upper case.
func Glyph(kind Kind, side Side) byte {
	if kind < 0 || kind >= NumKinds {
		return '?'
	}
	g := kindGlyphs[kind]
	if side == SideA && g >= 'A' && g <= 'Z' {
		g += 'a' - 'A'
	}
	return g
}

// ParseGlyph converts a board character into its kind and owning side.
// The empty glyph '-' yields (Empty, Neutral).
func ParseGlyph(c byte) (Kind, Side, bool) {
	if c == '-' {
		return Empty, Neutral, true
	}
	side := SideB
	upper := c
	if c >= 'a' && c <= 'z' {
		side = SideA
		upper = c - ('a' - 'A')
	}
	for k := King; k < Empty; k++ {
		if kindGlyphs[k] == upper {
			return k, side, true
		}
	}
	return Empty, Neutral, false
}

// Coord is a board square. File is the row index in the board layout and
// Rank the column index within that row.
type Coord struct {
	File int
	Rank int
}

// InBounds reports whether c lies on a size×size board.
func (c Coord) InBounds(size int) bool {
	return c.File >= 0 && c.File < size && c.Rank >= 0 && c.Rank < size
}

// String returns "file,rank".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.File, c.Rank)
}

// Less orders coordinates file-major.
func (c Coord) Less(o Coord) bool {
	if c.File != o.File {
		return c.File < o.File
	}
	return c.Rank < o.Rank
}
