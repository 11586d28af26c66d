package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// MateValue is the magnitude PositionValue reports for a checkmate.
const MateValue = 1

// Board is the size×size grid of pieces. It owns every piece in an arena
// indexed by PieceID; the grid stores arena indices. Every cell always holds
// exactly one piece, with Empty placeholders on vacant squares.
type Board struct {
	size   int
	pieces []*Piece // nil entries are free slots
	free   []PieceID
	grid   []PieceID

	// ready is set once the initial layout has been placed and the
	// baseline threats computed. Until then AddPiece only registers pieces.
	ready bool
}

// newBoard creates a board whose cells all hold placeholders.
func newBoard(size int) *Board {
	b := &Board{
		size: size,
		grid: make([]PieceID, size*size),
	}
	for f := 0; f < size; f++ {
		for r := 0; r < size; r++ {
			c := chess.Coord{File: f, Rank: r}
			b.grid[b.index(c)] = b.alloc(chess.Empty, chess.Neutral, c)
		}
	}
	return b
}

// Size returns the board dimension.
func (b *Board) Size() int { return b.size }

func (b *Board) index(c chess.Coord) int {
	return c.File*b.size + c.Rank
}

// alloc creates a detached piece in the arena, reusing a free slot if any.
func (b *Board) alloc(kind chess.Kind, side chess.Side, pos chess.Coord) PieceID {
	var id PieceID
	if n := len(b.free); n > 0 {
		id = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		id = PieceID(len(b.pieces))
		b.pieces = append(b.pieces, nil)
	}
	b.pieces[id] = newPiece(id, kind, side, pos, b.size)
	return id
}

// release returns a piece's arena slot to the free list.
func (b *Board) release(id PieceID) {
	b.pieces[id] = nil
	b.free = append(b.free, id)
}

// NewPiece creates a detached piece at pos. It is not on the grid until a
// Player adds it.
func (b *Board) NewPiece(kind chess.Kind, side chess.Side, pos chess.Coord) (PieceID, error) {
	if !pos.InBounds(b.size) {
		return NoPiece, errors.Wrapf(errors.ErrOutOfBounds, "new piece at %s", pos)
	}
	if kind < 0 || kind >= chess.Empty {
		return NoPiece, errors.Wrapf(errors.ErrIllegalMove, "cannot create piece of kind %s", kind)
	}
	if side != chess.SideA && side != chess.SideB {
		return NoPiece, errors.Wrapf(errors.ErrIllegalMove, "cannot create piece for side %s", side)
	}
	return b.alloc(kind, side, pos), nil
}

// Piece returns the live piece with the given ID.
func (b *Board) Piece(id PieceID) (*Piece, error) {
	if id < 0 || int(id) >= len(b.pieces) || b.pieces[id] == nil {
		return nil, errors.Wrapf(errors.ErrPieceNotOnBoard, "piece %d", id)
	}
	return b.pieces[id], nil
}

// mustPiece is Piece for IDs the engine itself handed out.
func (b *Board) mustPiece(id PieceID) *Piece {
	p, err := b.Piece(id)
	if err != nil {
		panic(&errors.InvariantError{Err: err, Op: "lookup"})
	}
	return p
}

// At returns the occupant of c.
func (b *Board) At(c chess.Coord) (*Piece, error) {
	if !c.InBounds(b.size) {
		return nil, errors.Wrapf(errors.ErrOutOfBounds, "square %s on %dx%d board", c, b.size, b.size)
	}
	return b.occupant(c), nil
}

// occupant returns the piece at an in-bounds square.
func (b *Board) occupant(c chess.Coord) *Piece {
	return b.pieces[b.grid[b.index(c)]]
}

// onBoard reports whether p currently sits in its grid cell.
func (b *Board) onBoard(p *Piece) bool {
	return p.pos.InBounds(b.size) && b.grid[b.index(p.pos)] == p.id
}

// install puts a detached piece into the cell at its position. The piece
// inherits the threatening-set of the placeholder it replaces.
func (b *Board) install(id PieceID) {
	p := b.mustPiece(id)
	idx := b.index(p.pos)
	old := b.pieces[b.grid[idx]]
	if !old.IsEmpty() {
		panic(&errors.InvariantError{
			Err:    errors.ErrIllegalMove,
			Op:     "install",
			Detail: fmt.Sprintf("%s#%d onto occupied square %s", p, p.id, p.pos),
		})
	}
	p.threats = old.threats
	b.grid[idx] = id
	b.release(old.id)
}

// vacate takes p off the grid and puts a fresh placeholder in its cell.
// The placeholder inherits the square's threatening-set.
func (b *Board) vacate(p *Piece) {
	idx := b.index(p.pos)
	ph := b.alloc(chess.Empty, chess.Neutral, p.pos)
	b.pieces[ph].threats = p.threats
	p.threats = make(map[PieceID]chess.Side)
	b.grid[idx] = ph
}

// addThreats records by as threatening the occupant of each square.
func (b *Board) addThreats(squares []chess.Coord, by *Piece) {
	for _, sq := range squares {
		b.occupant(sq).addThreat(by)
	}
}

// removeThreats retracts by from the occupant of each square, but only where
// by still geometrically threatens the square from its current position.
func (b *Board) removeThreats(squares []chess.Coord, by *Piece) {
	for _, sq := range squares {
		if by.IsThreatening(sq) {
			b.occupant(sq).removeThreat(by)
		}
	}
}

// DetermineAllThreats rebuilds every threatening-set from scratch. It is
// used to establish the baseline after the initial layout is placed;
// afterwards the sets are maintained incrementally.
func (b *Board) DetermineAllThreats() {
	for _, id := range b.grid {
		b.pieces[id].threats = make(map[PieceID]chess.Side)
	}
	for _, id := range b.grid {
		p := b.pieces[id]
		if p.IsEmpty() {
			continue
		}
		b.addThreats(p.ThreatenedSquares(), p)
	}
}

// LegalDestinations returns the squares piece id may move to: squares it
// threatens that do not hold a piece of its own side. A King additionally
// may not move onto a square its opponent threatens.
func (b *Board) LegalDestinations(id PieceID) []chess.Coord {
	p := b.mustPiece(id)
	if !b.onBoard(p) {
		panic(&errors.InvariantError{
			Err:    errors.ErrPieceNotOnBoard,
			Op:     "LegalDestinations",
			Detail: fmt.Sprintf("%s#%d", p, p.id),
		})
	}
	opponent, hasOpponent := p.side.Opponent()

	var moves []chess.Coord
	for _, sq := range p.ThreatenedSquares() {
		occ := b.occupant(sq)
		if occ.side == p.side {
			continue
		}
		if p.kind == chess.King && hasOpponent && occ.ThreatenedBy(opponent) {
			continue
		}
		moves = append(moves, sq)
	}
	return moves
}

// findKing locates the king of the given side on the grid.
func (b *Board) findKing(side chess.Side) (*Piece, bool) {
	for _, id := range b.grid {
		p := b.pieces[id]
		if p.kind == chess.King && p.side == side {
			return p, true
		}
	}
	return nil, false
}

// kingState reports whether king has no legal destinations and whether it
// is threatened by its opponent.
func (b *Board) kingState(king *Piece) (noMoves, threatened bool) {
	return len(b.LegalDestinations(king.id)) == 0, king.IsThreatenedByOpponent()
}

// isCheckmated reports whether side's king is boxed in and threatened.
func (b *Board) isCheckmated(side chess.Side) bool {
	king, ok := b.findKing(side)
	if !ok {
		return false
	}
	noMoves, threatened := b.kingState(king)
	return noMoves && threatened
}

// PositionValue summarises the game outcome from SideA's point of view:
// -MateValue when SideA is checkmated, MateValue when SideB is, else 0.
func (b *Board) PositionValue() int {
	if b.isCheckmated(chess.SideA) {
		return -MateValue
	}
	if b.isCheckmated(chess.SideB) {
		return MateValue
	}
	return 0
}

// ThreatMap returns, for every square, the sorted positions of the pieces
// threatening its occupant. Squares nobody threatens are omitted.
func (b *Board) ThreatMap() map[chess.Coord][]chess.Coord {
	m := make(map[chess.Coord][]chess.Coord)
	for _, id := range b.grid {
		p := b.pieces[id]
		if len(p.threats) == 0 {
			continue
		}
		from := make([]chess.Coord, 0, len(p.threats))
		for tid := range p.threats {
			from = append(from, b.pieces[tid].pos)
		}
		sort.Slice(from, func(i, j int) bool { return from[i].Less(from[j]) })
		m[p.pos] = from
	}
	return m
}

// String renders the board one row per line, one glyph per square.
func (b *Board) String() string {
	var sb strings.Builder
	for f := 0; f < b.size; f++ {
		for r := 0; r < b.size; r++ {
			if r > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.occupant(chess.Coord{File: f, Rank: r}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		size:   b.size,
		pieces: make([]*Piece, len(b.pieces)),
		free:   append([]PieceID(nil), b.free...),
		grid:   append([]PieceID(nil), b.grid...),
		ready:  b.ready,
	}
	for i, p := range b.pieces {
		if p != nil {
			c.pieces[i] = p.clone()
		}
	}
	return c
}
