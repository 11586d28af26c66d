// Package engine maintains a board of pieces together with the threat
// relation between them, and derives legal moves, check, checkmate and
// stalemate from it.
//
// Threats are kept up to date incrementally: placing a piece projects its
// threats onto the squares it reaches, removing it retracts them, and a
// move is a capture, a removal and a placement in sequence. The engine does
// no locking; concurrent consumers work on independent Game.Clone copies.
package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/errors"
)

// Move is a source-destination square pair.
type Move struct {
	From chess.Coord
	To   chess.Coord
}

// String returns "f,r-f,r".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// Game coordinates the board and the three players and tracks whose turn
// it is.
type Game struct {
	id      string
	board   *Board
	players [chess.NumSides]*Player
	toMove  chess.Side
}

// NewGame builds a game from a layout with first to move. Placing two kings
// for one side is a configuration error.
func NewGame(layout *Layout, first chess.Side) (*Game, error) {
	if layout == nil || layout.Size < 1 {
		return nil, errors.Wrap(errors.ErrMalformedBoard, "empty layout")
	}
	if first != chess.SideA && first != chess.SideB {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "side %s cannot move first", first)
	}

	if len(layout.Cells) != layout.Size {
		return nil, errors.Wrapf(errors.ErrMalformedBoard, "%d rows, want %d", len(layout.Cells), layout.Size)
	}

	board := newBoard(layout.Size)
	g := &Game{
		id:     uuid.NewString(),
		board:  board,
		toMove: first,
	}
	for side := chess.Neutral; side < chess.NumSides; side++ {
		g.players[side] = newPlayer(side, board)
	}
	g.linkOpponents()

	for f, row := range layout.Cells {
		if len(row) != layout.Size {
			return nil, errors.Wrapf(errors.ErrMalformedBoard, "row %d has %d squares, want %d", f, len(row), layout.Size)
		}
		for r, cell := range row {
			if cell.Kind == chess.Empty {
				continue
			}
			id, err := board.NewPiece(cell.Kind, cell.Side, chess.Coord{File: f, Rank: r})
			if err != nil {
				return nil, err
			}
			if err := g.players[cell.Side].AddPiece(id); err != nil {
				return nil, err
			}
			board.install(id)
		}
	}
	board.ready = true
	board.DetermineAllThreats()
	return g, nil
}

func (g *Game) linkOpponents() {
	g.players[chess.SideA].opponent = g.players[chess.SideB]
	g.players[chess.SideB].opponent = g.players[chess.SideA]
}

// ID returns the game's identifier. Clones share the ID of their origin.
func (g *Game) ID() string { return g.id }

// Board returns the game board.
func (g *Game) Board() *Board { return g.board }

// ToMove returns the side whose turn it is.
func (g *Game) ToMove() chess.Side { return g.toMove }

// Player returns the player for side, or nil for an unknown side.
func (g *Game) Player(side chess.Side) *Player {
	if side < 0 || side >= chess.NumSides {
		return nil
	}
	return g.players[side]
}

// Status classifies side's king situation. Unknown sides are Normal.
func (g *Game) Status(side chess.Side) Status {
	if p := g.Player(side); p != nil {
		return p.Status()
	}
	return Normal
}

// MakeMove moves the piece on from to to for the side to move. The request
// is rejected, leaving the game untouched, if either square is off the
// board, the source is not the mover's piece, or the destination holds one
// of the mover's own pieces.
func (g *Game) MakeMove(from, to chess.Coord) error {
	moveErr := func(err error) error {
		return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Side: g.toMove.String()}
	}

	size := g.board.size
	if !from.InBounds(size) || !to.InBounds(size) {
		return moveErr(errors.Wrapf(errors.ErrOutOfBounds, "board is %dx%d", size, size))
	}
	src := g.board.occupant(from)
	if src.side != g.toMove {
		return moveErr(errors.Wrapf(errors.ErrIllegalMove, "no piece of side %s on %s", g.toMove, from))
	}
	if dst := g.board.occupant(to); dst.side == g.toMove {
		return moveErr(errors.Wrapf(errors.ErrIllegalMove, "cannot capture own %s on %s", dst, to))
	}

	if err := g.players[g.toMove].MovePiece(src.id, to); err != nil {
		return moveErr(err)
	}
	g.toMove, _ = g.toMove.Opponent()
	return nil
}

// LegalMoves lists every legal destination of every piece of the side to
// move, ordered by source then destination.
func (g *Game) LegalMoves() []Move {
	var moves []Move
	for id, dests := range g.players[g.toMove].AllMoves() {
		from := g.board.mustPiece(id).pos
		for _, to := range dests {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From.Less(moves[j].From)
		}
		return moves[i].To.Less(moves[j].To)
	})
	return moves
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	board := g.board.Clone()
	c := &Game{
		id:     g.id,
		board:  board,
		toMove: g.toMove,
	}
	for side, p := range g.players {
		np := newPlayer(p.side, board)
		np.king = p.king
		for id := range p.pieces {
			np.pieces[id] = struct{}{}
		}
		c.players[side] = np
	}
	c.linkOpponents()
	return c
}
