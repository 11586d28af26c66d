package chess

// Geometry is the shape of a threat pattern.
type Geometry int

const (
	NoGeometry Geometry = iota
	Straight
	Diagonal
	LShape
)

// Unlimited is the distance of a pattern that reaches the board edge.
const Unlimited = -1

// ThreatPattern describes one movement geometry with an optional maximum
// distance. Threats are purely geometric: occupied squares in between do
// not block them.
type ThreatPattern struct {
	Geometry Geometry
	Distance int // Inclusive; Unlimited for no limit
}

// knightOffsets are the eight L-shaped offsets.
var knightOffsets = [8][2]int{{1, 2}, {-1, 2}, {2, 1}, {-2, 1}, {1, -2}, {-1, -2}, {2, -1}, {-2, -1}}

var (
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// within reports whether d is inside the pattern's reach.
func (p ThreatPattern) within(d int) bool {
	return p.Distance == Unlimited || d <= p.Distance
}

// IsThreatening reports whether a piece at origin threatens target.
// The origin never threatens itself.
func (p ThreatPattern) IsThreatening(origin, target Coord) bool {
	df := abs(target.File - origin.File)
	dr := abs(target.Rank - origin.Rank)
	if df == 0 && dr == 0 {
		return false
	}

	switch p.Geometry {
	case Straight:
		if df == 0 {
			return p.within(dr)
		}
		if dr == 0 {
			return p.within(df)
		}
		return false
	case Diagonal:
		return df == dr && p.within(df)
	case LShape:
		return (df == 1 && dr == 2) || (df == 2 && dr == 1)
	}
	return false
}

// ThreatenedSquares returns every square on a size×size board that a piece
// at origin threatens.
func (p ThreatPattern) ThreatenedSquares(origin Coord, size int) []Coord {
	switch p.Geometry {
	case Straight:
		return p.rays(origin, size, straightDirs[:])
	case Diagonal:
		return p.rays(origin, size, diagonalDirs[:])
	case LShape:
		var squares []Coord
		for _, off := range knightOffsets {
			c := Coord{File: origin.File + off[0], Rank: origin.Rank + off[1]}
			if c.InBounds(size) {
				squares = append(squares, c)
			}
		}
		return squares
	}
	return nil
}

// rays walks outward from origin along each direction until the board edge
// or the pattern's distance is reached.
func (p ThreatPattern) rays(origin Coord, size int, dirs [][2]int) []Coord {
	var squares []Coord
	for _, dir := range dirs {
		c := Coord{File: origin.File + dir[0], Rank: origin.Rank + dir[1]}
		for step := 1; c.InBounds(size) && p.within(step); step++ {
			squares = append(squares, c)
			c = Coord{File: c.File + dir[0], Rank: c.Rank + dir[1]}
		}
	}
	return squares
}

// patternTable maps each kind to its fixed pattern list.
var patternTable = [NumKinds][]ThreatPattern{
	King:   {{Straight, 1}, {Diagonal, 1}},
	Queen:  {{Straight, Unlimited}, {Diagonal, Unlimited}},
	Rook:   {{Straight, Unlimited}},
	Knight: {{LShape, 0}},
	Bishop: {{Diagonal, Unlimited}},
	Pawn:   {{Diagonal, 1}},
	Empty:  nil,
}

// Patterns returns the threat patterns of kind. The returned slice must
// not be modified.
func Patterns(kind Kind) []ThreatPattern {
	if kind < 0 || kind >= NumKinds {
		return nil
	}
	return patternTable[kind]
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
