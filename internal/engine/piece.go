package engine

import (
	"fmt"
	"sort"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// PieceID is the stable identity of a piece: its index in the board arena.
// It does not change when the piece moves.
type PieceID int32

// NoPiece marks the absence of a piece.
const NoPiece PieceID = -1

// Piece is a board-square occupant. Empty squares hold a placeholder piece
// of kind Empty owned by Neutral.
type Piece struct {
	id   PieceID
	kind chess.Kind
	side chess.Side
	pos  chess.Coord
	size int

	// threats holds the pieces currently threatening this one, with their sides.
	threats map[PieceID]chess.Side
}

func newPiece(id PieceID, kind chess.Kind, side chess.Side, pos chess.Coord, size int) *Piece {
	return &Piece{
		id:      id,
		kind:    kind,
		side:    side,
		pos:     pos,
		size:    size,
		threats: make(map[PieceID]chess.Side),
	}
}

// ID returns the piece's arena index.
func (p *Piece) ID() PieceID { return p.id }

// Kind returns the piece kind.
func (p *Piece) Kind() chess.Kind { return p.kind }

// Side returns the owning side.
func (p *Piece) Side() chess.Side { return p.side }

// Pos returns the piece's current square.
func (p *Piece) Pos() chess.Coord { return p.pos }

// IsEmpty reports whether the piece is an empty-square placeholder.
func (p *Piece) IsEmpty() bool { return p.kind == chess.Empty }

// String renders the piece as its board glyph.
func (p *Piece) String() string {
	return string(chess.Glyph(p.kind, p.side))
}

// IsThreatening reports whether any of the piece's patterns threatens
// target from its current position.
func (p *Piece) IsThreatening(target chess.Coord) bool {
	for _, pattern := range chess.Patterns(p.kind) {
		if pattern.IsThreatening(p.pos, target) {
			return true
		}
	}
	return false
}

// ThreatenedSquares returns the squares the piece threatens from its
// current position, pattern by pattern.
func (p *Piece) ThreatenedSquares() []chess.Coord {
	var squares []chess.Coord
	for _, pattern := range chess.Patterns(p.kind) {
		squares = append(squares, pattern.ThreatenedSquares(p.pos, p.size)...)
	}
	return squares
}

// IsThreatenedByOpponent reports whether a piece of another side threatens
// this one. Placeholders have no opponent and are never threatened.
func (p *Piece) IsThreatenedByOpponent() bool {
	if _, ok := p.side.Opponent(); !ok {
		return false
	}
	for _, side := range p.threats {
		if side != p.side {
			return true
		}
	}
	return false
}

// ThreatenedBy reports whether a piece of the given side threatens this one.
func (p *Piece) ThreatenedBy(side chess.Side) bool {
	for _, s := range p.threats {
		if s == side {
			return true
		}
	}
	return false
}

// Threats returns the IDs of the pieces threatening this one, in ascending order.
func (p *Piece) Threats() []PieceID {
	ids := make([]PieceID, 0, len(p.threats))
	for id := range p.threats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (p *Piece) addThreat(by *Piece) {
	p.threats[by.id] = by.side
}

// removeThreat drops by from the threatening-set. The relation must have
// been recorded; anything else means the incremental bookkeeping is broken.
func (p *Piece) removeThreat(by *Piece) {
	if _, ok := p.threats[by.id]; !ok {
		panic(&errors.InvariantError{
			Err:    errors.ErrThreatNotRecorded,
			Op:     "removeThreat",
			Detail: fmt.Sprintf("%s#%d at %s does not threaten %s#%d at %s", by, by.id, by.pos, p, p.id, p.pos),
		})
	}
	delete(p.threats, by.id)
}

func (p *Piece) clone() *Piece {
	c := *p
	c.threats = make(map[PieceID]chess.Side, len(p.threats))
	for id, side := range p.threats {
		c.threats[id] = side
	}
	return &c
}
