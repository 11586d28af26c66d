package engine

import (
	"fmt"
	"sort"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// Status summarises a side's king situation.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "normal"
}

// Player owns the non-empty pieces of one side and mutates the board on
// their behalf. The Neutral player owns no pieces; empty squares are its
// placeholders.
type Player struct {
	side     chess.Side
	board    *Board
	opponent *Player
	pieces   map[PieceID]struct{}
	king     PieceID
}

func newPlayer(side chess.Side, board *Board) *Player {
	return &Player{
		side:   side,
		board:  board,
		pieces: make(map[PieceID]struct{}),
		king:   NoPiece,
	}
}

// Side returns the side this player moves for.
func (p *Player) Side() chess.Side { return p.side }

// OpponentSide returns the opposing side. Neutral has none.
func (p *Player) OpponentSide() (chess.Side, bool) {
	return p.side.Opponent()
}

// King returns the ID of this side's king, if one has been placed.
func (p *Player) King() (PieceID, bool) {
	return p.king, p.king != NoPiece
}

// Pieces returns the IDs of the player's pieces in ascending order.
func (p *Player) Pieces() []PieceID {
	ids := make([]PieceID, 0, len(p.pieces))
	for id := range p.pieces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Owns reports whether id is registered with this player.
func (p *Player) Owns(id PieceID) bool {
	_, ok := p.pieces[id]
	return ok
}

// AddPiece registers a piece of this side. Once the board is ready the
// piece is also written into its cell, which must be empty, and its threats
// are projected. A second king for the side is a configuration error.
func (p *Player) AddPiece(id PieceID) error {
	piece, err := p.board.Piece(id)
	if err != nil {
		return err
	}
	if piece.side != p.side {
		return errors.Wrapf(errors.ErrIllegalMove, "piece %s#%d belongs to side %s, not %s", piece, id, piece.side, p.side)
	}
	if piece.kind == chess.King && p.king != NoPiece && p.king != id {
		return errors.Wrapf(errors.ErrDuplicateKing, "side %s already has a king at %s; second at %s",
			p.side, p.board.mustPiece(p.king).pos, piece.pos)
	}
	if p.board.ready {
		if p.board.onBoard(piece) {
			return errors.Wrapf(errors.ErrIllegalMove, "piece %s#%d is already on %s", piece, id, piece.pos)
		}
		if occ := p.board.occupant(piece.pos); !occ.IsEmpty() {
			return errors.Wrapf(errors.ErrIllegalMove, "square %s is occupied by %s", piece.pos, occ)
		}
	}

	p.pieces[id] = struct{}{}
	if piece.kind == chess.King {
		p.king = id
	}
	if p.board.ready {
		p.board.install(id)
		p.board.addThreats(piece.ThreatenedSquares(), piece)
	}
	return nil
}

// RemovePiece unregisters a piece, puts an Empty placeholder in its cell and
// retracts the threats it projected. The piece stays in the arena, detached,
// so it can be added again.
func (p *Player) RemovePiece(id PieceID) error {
	if !p.Owns(id) {
		return errors.Wrapf(errors.ErrPieceNotOnBoard, "piece %d is not owned by side %s", id, p.side)
	}
	piece := p.board.mustPiece(id)
	if !p.board.onBoard(piece) {
		return errors.Wrapf(errors.ErrPieceNotOnBoard, "piece %s#%d", piece, id)
	}

	delete(p.pieces, id)
	if p.king == id {
		p.king = NoPiece
	}
	squares := piece.ThreatenedSquares()
	p.board.vacate(piece)
	p.board.removeThreats(squares, piece)
	return nil
}

// MovePiece moves one of the player's pieces to dest, capturing whatever
// opposing piece stands there. All checks happen before the board is
// touched; the capture, removal and re-placement then run as one step.
func (p *Player) MovePiece(id PieceID, dest chess.Coord) error {
	if !p.Owns(id) {
		return errors.Wrapf(errors.ErrIllegalMove, "piece %d is not owned by side %s", id, p.side)
	}
	if !dest.InBounds(p.board.size) {
		return errors.Wrapf(errors.ErrOutOfBounds, "destination %s", dest)
	}
	piece := p.board.mustPiece(id)
	target := p.board.occupant(dest)
	if target.side == p.side {
		return errors.Wrapf(errors.ErrIllegalMove, "%s at %s cannot capture own %s at %s", piece, piece.pos, target, dest)
	}
	if !target.IsEmpty() && (p.opponent == nil || !p.opponent.Owns(target.id)) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s at %s has no owner to capture from", target, dest)
	}

	if !target.IsEmpty() {
		mustApply(p.opponent.RemovePiece(target.id), "capture")
		p.board.release(target.id)
	}
	mustApply(p.RemovePiece(id), "lift")
	piece.pos = dest
	mustApply(p.AddPiece(id), "place")
	return nil
}

// mustApply turns a failure inside an already-validated move into an
// invariant violation.
func mustApply(err error, op string) {
	if err != nil {
		panic(&errors.InvariantError{Err: err, Op: "MovePiece/" + op})
	}
}

// AllMoves maps each of the player's pieces to its legal destinations.
func (p *Player) AllMoves() map[PieceID][]chess.Coord {
	moves := make(map[PieceID][]chess.Coord, len(p.pieces))
	for id := range p.pieces {
		moves[id] = p.board.LegalDestinations(id)
	}
	return moves
}

func (p *Player) kingState() (hasKing, noMoves, threatened bool) {
	if p.king == NoPiece {
		return false, false, false
	}
	noMoves, threatened = p.board.kingState(p.board.mustPiece(p.king))
	return true, noMoves, threatened
}

// InCheck reports whether the player's king is threatened by the opponent.
func (p *Player) InCheck() bool {
	hasKing, _, threatened := p.kingState()
	return hasKing && threatened
}

// IsInCheckmate reports whether the king has no legal destinations and is
// threatened.
func (p *Player) IsInCheckmate() bool {
	hasKing, noMoves, threatened := p.kingState()
	return hasKing && noMoves && threatened
}

// IsInStalemate reports whether the king has no legal destinations and is
// not threatened.
func (p *Player) IsInStalemate() bool {
	hasKing, noMoves, threatened := p.kingState()
	return hasKing && noMoves && !threatened
}

// Status classifies the player's king situation.
func (p *Player) Status() Status {
	hasKing, noMoves, threatened := p.kingState()
	switch {
	case !hasKing:
		return Normal
	case noMoves && threatened:
		return Checkmate
	case noMoves:
		return Stalemate
	case threatened:
		return Check
	}
	return Normal
}

// String describes the player for diagnostics.
func (p *Player) String() string {
	return fmt.Sprintf("side %s (%d pieces)", p.side, len(p.pieces))
}
