package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/config"
	"github.com/lgbarn/threatboard/internal/engine"
)

// writeReport prints the board and its state as selected by cfg.Output.
func writeReport(w io.Writer, cfg *config.Config, g *engine.Game) error {
	bw := bufio.NewWriter(w)

	if cfg.Output.ShowBoard {
		fmt.Fprint(bw, g.Board())
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "to move: %s\n", g.ToMove())
	for _, side := range []chess.Side{chess.SideA, chess.SideB} {
		fmt.Fprintf(bw, "side %s: %s\n", side, g.Status(side))
	}
	fmt.Fprintf(bw, "position value: %d\n", g.Board().PositionValue())

	if cfg.Output.ListMoves {
		writeMoves(bw, g.LegalMoves())
	}
	if cfg.Output.ShowThreats {
		writeThreats(bw, g.Board().ThreatMap())
	}
	return bw.Flush()
}

func writeMoves(w io.Writer, moves []engine.Move) {
	fmt.Fprintf(w, "legal moves (%d):\n", len(moves))
	for _, mv := range moves {
		fmt.Fprintf(w, "  %s\n", mv)
	}
}

// writeThreats prints one line per threatened square, squares in order.
func writeThreats(w io.Writer, threats map[chess.Coord][]chess.Coord) {
	squares := make([]chess.Coord, 0, len(threats))
	for sq := range threats {
		squares = append(squares, sq)
	}
	sort.Slice(squares, func(i, j int) bool { return squares[i].Less(squares[j]) })

	fmt.Fprintln(w, "threats:")
	for _, sq := range squares {
		from := make([]string, len(threats[sq]))
		for i, c := range threats[sq] {
			from[i] = c.String()
		}
		fmt.Fprintf(w, "  %s <- %s\n", sq, strings.Join(from, " "))
	}
}
